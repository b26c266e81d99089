package registry

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/testutil"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/rpt2ogd77/rpt2ogd77/internal/channel"
	"github.com/rpt2ogd77/rpt2ogd77/internal/cps"
)

func testChannel(name string, t channel.Type, rx string) channel.Channel {
	f, err := channel.ParseFrequency(rx)
	if err != nil {
		panic(err)
	}

	ch := channel.Channel{
		Name:        name,
		RxFrequency: f,
		TxFrequency: f,
	}
	if t == channel.TypeDigital {
		ch.Mode = channel.Digital{}
	} else {
		ch.Mode = channel.Analogue{Bandwidth: "12.5"}
	}
	return ch
}

func externalRow(number, name string) cps.ChannelRow {
	r := cps.NewChannelRow()
	r[cps.ColChannelNumber] = number
	r[cps.ColChannelName] = name
	r[cps.ColChannelType] = "Analogue"
	r[cps.ColRxFrequency] = "145.500"
	return r
}

func TestRegistry(t *testing.T) {
	Convey("Given an empty registry", t, func() {
		r := New()

		Convey("When registering channels", func() {
			So(r.Register(testChannel("SK7RFL Lund 70cm", channel.TypeDigital, "434.600")), ShouldBeNil)
			So(r.Register(testChannel("SK3BA Gävle 2m", channel.TypeAnalogue, "145.725")), ShouldBeNil)
			So(r.Register(testChannel("SK3ØA Stad 2m", channel.TypeAnalogue, "145.600")), ShouldBeNil)
			So(r.Register(testChannel("SK0QC Stockholm", channel.TypeAnalogue, "434.750")), ShouldBeNil)
			So(r.Register(testChannel("SK7RFL Lund 2m", channel.TypeDigital, "145.5875")), ShouldBeNil)
			So(r.Register(testChannel("SK3AB Sala 2m", channel.TypeAnalogue, "145.6")), ShouldBeNil)

			Convey("Then the names are claimed", func() {
				So(r.Len(), ShouldEqual, 6)
				So(r.Contains("SK0QC Stockholm"), ShouldBeTrue)
				So(r.Contains("SK0QC"), ShouldBeFalse)
			})

			Convey("Then registering a duplicate name fails", func() {
				err := r.Register(testChannel("SK0QC Stockholm", channel.TypeDigital, "434.750"))
				So(errors.Cause(err), ShouldEqual, ErrAlreadyExists)
				So(r.Len(), ShouldEqual, 6)
			})

			Convey("Then finalize sorts by type, district and frequency", func() {
				rows := r.Finalize()
				So(rows, ShouldHaveLength, 6)

				var names, numbers []string
				for _, row := range rows {
					names = append(names, row.Name())
					numbers = append(numbers, row[cps.ColChannelNumber])
				}

				So(names, ShouldResemble, []string{
					"SK0QC Stockholm",
					"SK3ØA Stad 2m",
					"SK3AB Sala 2m",
					"SK3BA Gävle 2m",
					"SK7RFL Lund 2m",
					"SK7RFL Lund 70cm",
				})
				So(numbers, ShouldResemble, []string{"501", "502", "503", "504", "505", "506"})
			})

			Convey("Then finalize is repeatable", func() {
				So(r.Finalize(), ShouldResemble, r.Finalize())
			})

			Convey("When merging custom channels", func() {
				warnings := testutil.ToFloat64(externalNumberWarningCounter())
				So(r.MergeExternal([]cps.ChannelRow{
					externalRow("2", "Simplex 145.500 MHz"),
					externalRow("1", " Calling "),
					externalRow("500", "Reserved"),
				}), ShouldBeNil)

				Convey("Then they are emitted first, in source order", func() {
					rows := r.Finalize()
					So(rows, ShouldHaveLength, 9)
					So(rows[0].Name(), ShouldEqual, "Simplex 145.500")
					So(rows[0][cps.ColChannelNumber], ShouldEqual, "2")
					So(rows[1].Name(), ShouldEqual, "Calling")
					So(rows[2].Name(), ShouldEqual, "Reserved")
					So(rows[2][cps.ColChannelNumber], ShouldEqual, "500")
					So(rows[3][cps.ColChannelNumber], ShouldEqual, "501")
				})

				Convey("Then the number 500 is reported once", func() {
					So(testutil.ToFloat64(externalNumberWarningCounter()), ShouldEqual, warnings+1)
				})

				Convey("Then the custom names are claimed", func() {
					So(r.Contains("Simplex 145.500"), ShouldBeTrue)
					So(r.Contains("Calling"), ShouldBeTrue)
				})
			})

			Convey("When merging a custom channel with an invalid number", func() {
				err := r.MergeExternal([]cps.ChannelRow{externalRow("one", "Simplex")})

				Convey("Then an error is returned", func() {
					So(err, ShouldNotBeNil)
				})
			})
		})
	})
}
