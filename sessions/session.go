// Package sessions ties one rendering session's channels and markers together
// and exposes the operations a pattern executor calls.
package sessions

import (
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/reusee/weave/channels"
	"github.com/reusee/weave/formats"
	"github.com/reusee/weave/logs"
	"github.com/reusee/weave/markers"
	"github.com/reusee/weave/outputs"
	"github.com/reusee/weave/weaveconfigs"
)

// Session owns a full channel set and marker table.
// Sessions share no mutable state; a session must be driven by one goroutine at a time.
type Session struct {
	ID      uuid.UUID
	format  *formats.Format
	output  *outputs.Output
	markers *markers.Table
	logger  logs.Logger
}

// NewSession starts a session rendering with the named format.
// An empty name selects the default format.
type NewSession func(formatName string) (*Session, error)

func (Module) NewSession(
	registry *formats.Registry,
	defaultFormat weaveconfigs.DefaultFormat,
	strict weaveconfigs.Strict,
	logger logs.Logger,
) NewSession {
	return func(formatName string) (*Session, error) {
		if formatName == "" {
			formatName = string(defaultFormat)
		}
		format, err := registry.Get(formatName)
		if err != nil {
			return nil, err
		}
		id := uuid.New()
		session := &Session{
			ID:      id,
			format:  format,
			output:  outputs.New(format, bool(strict)),
			markers: markers.New(),
			logger:  logger.With("session", id.String()),
		}
		session.logger.Info("new session",
			"format", format.Name,
			"strict", bool(strict),
		)
		return session, nil
	}
}

func (s *Session) Format() *formats.Format {
	return s.format
}

func (s *Session) Output() *outputs.Output {
	return s.output
}

func (s *Session) Markers() *markers.Table {
	return s.markers
}

func (s *Session) Logger() logs.Logger {
	return s.logger
}

func (s *Session) Write(text string) {
	s.logger.Debug("write", "channel", s.output.Top().Name(), "runes", utf8.RuneCountInString(text))
	s.output.Write(text)
}

func (s *Session) Article() {
	s.logger.Debug("article", "channel", s.output.Top().Name())
	s.output.InsertArticle()
}

func (s *Session) WriteToTarget(name, text string, overwrite bool) {
	s.logger.Debug("write to target", "target", name, "runes", utf8.RuneCountInString(text), "overwrite", overwrite)
	s.output.WriteToTarget(name, text, overwrite)
}

func (s *Session) CreateTarget(name string) {
	s.logger.Debug("create target", "target", name)
	s.output.CreateTarget(name)
}

func (s *Session) ClearTarget(name string) {
	s.logger.Debug("clear target", "target", name)
	s.output.ClearTarget(name)
}

func (s *Session) SetCase(mode formats.Case) {
	s.logger.Debug("case", "mode", mode.String())
	s.output.SetCase(mode)
}

func (s *Session) OpenChannel(name string, visibility channels.Visibility) {
	s.logger.Debug("open channel", "channel", name, "visibility", visibility.String())
	s.output.Open(name, visibility)
}

func (s *Session) CloseChannel(name string) error {
	s.logger.Debug("close channel", "channel", name)
	return s.output.Close(name)
}

// SetMarker records the current position of the top channel.
func (s *Session) SetMarker(name string) {
	marker := s.markers.Set(name, s.output.Top())
	s.logger.Debug("marker",
		"name", name,
		"channel", marker.Channel.Name(),
		"segment", marker.Position.Segment,
		"offset", marker.Position.Offset,
	)
}

func (s *Session) Distance(a, b string) int {
	return s.markers.Distance(a, b)
}

func (s *Session) CopyRegion(a, b string) string {
	return s.markers.CopyRegion(a, b)
}

func (s *Session) Read(name string) (string, error) {
	return s.output.Read(name)
}

func (s *Session) Result() []outputs.ChannelValue {
	return s.output.Result()
}
