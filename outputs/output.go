// Package outputs manages the channels of one rendering session.
//
// The main channel always exists and sits at the bottom of the active stack.
// Channel operations apply to the top of the stack, and also to main when the
// top channel is public.
package outputs

import (
	"errors"
	"fmt"
	"slices"

	"github.com/reusee/weave/channels"
	"github.com/reusee/weave/formats"
)

const MainChannel = "main"

var (
	ErrChannelNotFound   = errors.New("channel not found")
	ErrChannelNotVisible = errors.New("channel not visible")
	ErrMainChannel       = errors.New("main channel cannot be closed")
)

type Output struct {
	format   *formats.Format
	strict   bool
	channels map[string]*channels.Channel
	// creation order
	order []*channels.Channel
	// active stack, main at the bottom
	stack []*channels.Channel
}

func New(format *formats.Format, strict bool) *Output {
	o := &Output{
		format:   format,
		strict:   strict,
		channels: make(map[string]*channels.Channel),
	}
	o.stack = append(o.stack, o.create(MainChannel, channels.Public))
	return o
}

func (o *Output) create(name string, visibility channels.Visibility) *channels.Channel {
	c := channels.New(name, visibility, o.format)
	c.SetStrict(o.strict)
	o.channels[name] = c
	o.order = append(o.order, c)
	return c
}

func (o *Output) Main() *channels.Channel {
	return o.stack[0]
}

func (o *Output) Get(name string) (*channels.Channel, bool) {
	c, ok := o.channels[name]
	return c, ok
}

// Open pushes the named channel onto the active stack, creating it on first use.
// Opening a channel already on the stack moves it to the top.
func (o *Output) Open(name string, visibility channels.Visibility) *channels.Channel {
	if name == MainChannel {
		return o.Main()
	}
	c, ok := o.channels[name]
	if !ok {
		c = o.create(name, visibility)
	} else {
		c.SetVisibility(visibility)
		o.stack = slices.DeleteFunc(o.stack, func(e *channels.Channel) bool {
			return e == c
		})
	}
	o.stack = append(o.stack, c)
	return c
}

// Close removes the named channel from the active stack. Its content is kept.
func (o *Output) Close(name string) error {
	if name == MainChannel {
		return ErrMainChannel
	}
	for i := len(o.stack) - 1; i > 0; i-- {
		if o.stack[i].Name() == name {
			o.stack = slices.Delete(o.stack, i, i+1)
			return nil
		}
	}
	return fmt.Errorf("%w: %s is not open", ErrChannelNotFound, name)
}

// Top returns the channel on top of the active stack.
func (o *Output) Top() *channels.Channel {
	return o.stack[len(o.stack)-1]
}

// Active returns the channels receiving writes.
func (o *Output) Active() []*channels.Channel {
	top := o.Top()
	if top == o.Main() || top.Visibility() != channels.Public {
		return []*channels.Channel{top}
	}
	return []*channels.Channel{top, o.Main()}
}

func (o *Output) Write(text string) {
	for _, c := range o.Active() {
		c.Write(text)
	}
}

func (o *Output) InsertArticle() {
	for _, c := range o.Active() {
		c.InsertArticle()
	}
}

func (o *Output) WriteToTarget(name, text string, overwrite bool) {
	for _, c := range o.Active() {
		c.WriteToTarget(name, text, overwrite)
	}
}

func (o *Output) CreateTarget(name string) {
	for _, c := range o.Active() {
		c.CreateTarget(name)
	}
}

func (o *Output) ClearTarget(name string) {
	for _, c := range o.Active() {
		c.ClearTarget(name)
	}
}

func (o *Output) SetCase(mode formats.Case) {
	for _, c := range o.Active() {
		c.SetCase(mode)
	}
}
