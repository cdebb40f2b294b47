package remote

import (
	"context"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestPrepareRequest(t *testing.T) {
	var from int64 = 300
	var until int64 = 500
	target := "foo.bar"

	Convey("Given valid params", t, func() {
		remote := Remote{config: &Config{URL: "http://test/"}}
		req, err := remote.prepareRequest(context.Background(), from, until, target)

		Convey("url should be encoded correctly without error", func() {
			So(err, ShouldBeNil)
			So(req.URL.String(), ShouldEqual, "http://test/render?format=json&from=300&target=foo.bar&until=500")
		})

		Convey("auth header should be empty", func() {
			So(req.Header.Get("Authorization"), ShouldEqual, "")
		})
	})

	Convey("Given valid params with user and password", t, func() {
		remote := Remote{config: &Config{
			URL:      "http://test",
			User:     "foo",
			Password: "bar",
		}}
		req, err := remote.prepareRequest(context.Background(), from, until, target)

		Convey("auth header should be set without error", func() {
			u, p, ok := req.BasicAuth()
			So(err, ShouldBeNil)
			So(ok, ShouldBeTrue)
			So(u, ShouldEqual, "foo")
			So(p, ShouldEqual, "bar")
		})
	})

	Convey("Given user without password", t, func() {
		remote := Remote{config: &Config{
			URL:  "https://graphite",
			User: "token",
		}}
		req, err := remote.prepareRequest(context.Background(), from, until, target)

		Convey("auth header should carry user with empty password", func() {
			u, p, ok := req.BasicAuth()
			So(err, ShouldBeNil)
			So(ok, ShouldBeTrue)
			So(u, ShouldEqual, "token")
			So(p, ShouldBeEmpty)
		})
	})
}

func TestSummarizeTarget(t *testing.T) {
	Convey("Hourly step", t, func() {
		So(summarizeTarget("servers.*.cpu", time.Hour), ShouldEqual, `summarize(servers.*.cpu,"1h")`)
	})

	Convey("Minute step", t, func() {
		So(summarizeTarget("a.b", 5*time.Minute), ShouldEqual, `summarize(a.b,"5min")`)
	})

	Convey("Second step", t, func() {
		So(summarizeTarget("a.b", 30*time.Second), ShouldEqual, `summarize(a.b,"30s")`)
	})
}
