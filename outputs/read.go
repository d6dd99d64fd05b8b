package outputs

import (
	"fmt"

	"github.com/reusee/weave/channels"
)

// ChannelValue is the rendered content of a readable channel.
type ChannelValue struct {
	Name       string
	Visibility channels.Visibility
	Value      string
	Length     int
}

func (o *Output) readable(name string) (*channels.Channel, error) {
	c, ok := o.channels[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrChannelNotFound, name)
	}
	if c.Visibility() == channels.Internal {
		return nil, fmt.Errorf("%w: %s", ErrChannelNotVisible, name)
	}
	return c, nil
}

// Read returns the value of a non-internal channel.
func (o *Output) Read(name string) (string, error) {
	c, err := o.readable(name)
	if err != nil {
		return "", err
	}
	return c.Value(), nil
}

// Length returns the length of a non-internal channel.
func (o *Output) Length(name string) (int, error) {
	c, err := o.readable(name)
	if err != nil {
		return 0, err
	}
	return c.Length(), nil
}

// Result returns every non-internal channel in creation order.
func (o *Output) Result() []ChannelValue {
	var ret []ChannelValue
	for _, c := range o.order {
		if c.Visibility() == channels.Internal {
			continue
		}
		ret = append(ret, ChannelValue{
			Name:       c.Name(),
			Visibility: c.Visibility(),
			Value:      c.Value(),
			Length:     c.Length(),
		})
	}
	return ret
}
