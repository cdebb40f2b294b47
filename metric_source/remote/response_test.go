package remote

import (
	"testing"

	"github.com/capmon/capmon"
	. "github.com/smartystreets/goconvey/convey"
)

func TestDecodeBody(t *testing.T) {
	Convey("Given empty json response", t, func() {
		resp, err := decodeBody([]byte("[]"))
		Convey("response should be empty and without error", func() {
			So(err, ShouldBeNil)
			So(resp, ShouldBeEmpty)
		})
	})

	Convey("Given response with null points", t, func() {
		body := []byte(`[{"target": "summarize(a.b, \"1h\", \"sum\")", "tags": {"name": "a.b"}, "datapoints": [[null, 1522076400], [233, 1522080000], [null, 1522083600], [10.5, 1522087200]]}]`)

		resp, err := decodeBody(body)
		So(err, ShouldBeNil)
		So(resp, ShouldResemble, []capmon.MetricSeries{
			{
				Name:       "a.b",
				Timestamps: []int64{1522080000, 1522087200},
				Values:     []float64{233, 10.5},
			},
		})
	})

	Convey("Given response without tags", t, func() {
		body := []byte(`[{"target": "t1", "datapoints": [[1, 2], [3, 4]]}, {"target": "t2", "datapoints": [[5, 2]]}]`)

		resp, err := decodeBody(body)
		So(err, ShouldBeNil)
		So(resp, ShouldHaveLength, 2)
		So(resp[0].Name, ShouldEqual, "t1")
		So(resp[0].Timestamps, ShouldResemble, []int64{2, 4})
		So(resp[0].Values, ShouldResemble, []float64{1, 3})
		So(resp[1].Name, ShouldEqual, "t2")
	})

	Convey("Given datapoint without timestamp", t, func() {
		resp, err := decodeBody([]byte(`[{"target": "t1", "datapoints": [[1, null]]}]`))
		So(resp, ShouldBeNil)
		So(err.Error(), ShouldEqual, "target t1 has datapoint without timestamp")
	})

	Convey("Given invalid json", t, func() {
		resp, err := decodeBody([]byte("Some string"))
		So(resp, ShouldBeNil)
		So(err.Error(), ShouldEqual, "invalid character 'S' looking for beginning of value")
	})
}
