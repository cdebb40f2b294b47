package capmon

import "time"

// Logger implements logger abstraction
type Logger interface {
	Debug() EventBuilder
	Info() EventBuilder
	Error() EventBuilder
	Fatal() EventBuilder
	Warning() EventBuilder

	// Level sets minimal level of logging
	Level(string) (Logger, error)

	// Clone returns logger copy which fields can be changed without changing the original one
	Clone() Logger

	// Fields added to all following log events
	String(key, value string) Logger
	Int(key string, value int) Logger
	Int64(key string, value int64) Logger
	Fields(fields map[string]interface{}) Logger
}

// EventBuilder allows to build log events with custom tags
type EventBuilder interface {
	String(key, value string) EventBuilder
	Error(err error) EventBuilder
	Int(key string, value int) EventBuilder
	Int64(key string, value int64) EventBuilder
	Interface(key string, value interface{}) EventBuilder
	Fields(fields map[string]interface{}) EventBuilder

	// Msg must be called after all tags were set
	Msg(message string)
}

// Forecaster builds prediction for observed series
type Forecaster interface {
	Forecast(series MetricSeries, horizon time.Duration) (*ForecastResult, error)
}
