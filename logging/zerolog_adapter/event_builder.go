package logging

import (
	"github.com/capmon/capmon"
	"github.com/rs/zerolog"
)

// EventBuilder wraps zerolog event, nil event means that level is disabled
type EventBuilder struct {
	*zerolog.Event
}

func (e EventBuilder) Msg(msg string) {
	if e.Event != nil {
		e.Event.Msg(msg)
	}
}

func (e EventBuilder) String(key, value string) capmon.EventBuilder {
	if e.Event != nil {
		e.Event.Str(key, value)
	}
	return e
}

func (e EventBuilder) Error(err error) capmon.EventBuilder {
	if e.Event != nil {
		e.Event.Err(err)
	}
	return e
}

func (e EventBuilder) Int(key string, value int) capmon.EventBuilder {
	if e.Event != nil {
		e.Event.Int(key, value)
	}
	return e
}

func (e EventBuilder) Int64(key string, value int64) capmon.EventBuilder {
	if e.Event != nil {
		e.Event.Int64(key, value)
	}
	return e
}

func (e EventBuilder) Interface(key string, value interface{}) capmon.EventBuilder {
	if e.Event != nil {
		e.Event.Interface(key, value)
	}
	return e
}

func (e EventBuilder) Fields(fields map[string]interface{}) capmon.EventBuilder {
	if e.Event != nil {
		e.Event.Fields(fields)
	}
	return e
}
