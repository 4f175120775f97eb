package dateparse_test

import (
	"testing"
	"time"

	. "github.com/onsi/gomega"

	"github.com/imarsman/dateparse"
)

func TestParseWeekdayDateTimeZoneYear(t *testing.T) {
	g := NewWithT(t)

	got, err := dateparse.Parse("Thu Sep 25 10:36:28 BRST 2003", nil)
	g.Expect(err).NotTo(HaveOccurred())

	g.Expect(got.Year()).To(Equal(2003))
	g.Expect(got.Month()).To(Equal(time.September))
	g.Expect(got.Day()).To(Equal(25))
	g.Expect(got.Hour()).To(Equal(10))
	g.Expect(got.Minute()).To(Equal(36))
	g.Expect(got.Second()).To(Equal(28))
	g.Expect(got.Location().String()).To(Equal("BRST"))
}

func TestParseISO8601WithOffsetAndFraction(t *testing.T) {
	g := NewWithT(t)

	got, err := dateparse.Parse("1997-07-16T19:20:30.45+01:00", nil)
	g.Expect(err).NotTo(HaveOccurred())

	g.Expect(got.Year()).To(Equal(1997))
	g.Expect(got.Month()).To(Equal(time.July))
	g.Expect(got.Day()).To(Equal(16))
	g.Expect(got.Hour()).To(Equal(19))
	g.Expect(got.Minute()).To(Equal(20))
	g.Expect(got.Second()).To(Equal(30))
	g.Expect(got.Nanosecond()).To(Equal(450000000))
	_, offset := got.Zone()
	g.Expect(offset).To(Equal(3600))
}

func TestParseDayfirstOption(t *testing.T) {
	g := NewWithT(t)

	dayfirst, err := dateparse.Parse("10/09/1998", &dateparse.ParseOptions{Dayfirst: true})
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(dayfirst.Day()).To(Equal(10))
	g.Expect(dayfirst.Month()).To(Equal(time.September))

	monthFirst, err := dateparse.Parse("10/09/1998", &dateparse.ParseOptions{Dayfirst: false})
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(monthFirst.Month()).To(Equal(time.October))
	g.Expect(monthFirst.Day()).To(Equal(9))
}

func TestParseBadFormatNonFuzzy(t *testing.T) {
	g := NewWithT(t)

	_, err := dateparse.Parse("###not a date###", nil)
	g.Expect(err).To(MatchError(dateparse.ErrBadFormat))
}

func TestParseFuzzyRecoversFromJunk(t *testing.T) {
	g := NewWithT(t)

	got, err := dateparse.Parse("25 December 2019 (ignore this part)", &dateparse.ParseOptions{Fuzzy: true})
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(got.Year()).To(Equal(2019))
	g.Expect(got.Month()).To(Equal(time.December))
	g.Expect(got.Day()).To(Equal(25))
}

func TestParseWeekdayOnlyAppliesRelativeAdjust(t *testing.T) {
	g := NewWithT(t)

	base := time.Date(2003, time.September, 25, 10, 0, 0, 0, time.UTC) // Thursday
	got, err := dateparse.Parse("Friday", &dateparse.ParseOptions{Default: base})
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(got.Day()).To(Equal(26))
}

func TestParseTZDecodesUSEasternRule(t *testing.T) {
	g := NewWithT(t)

	r, err := dateparse.ParseTZ("EST5EDT,M3.2.0/2,M11.1.0/2")
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(r.StdAbbr).To(Equal("EST"))
	g.Expect(r.StdOffset).To(Equal(-18000))
	g.Expect(r.DstAbbr).To(Equal("EDT"))
	g.Expect(r.DstOffset).To(Equal(-14400))
}

func TestParseTZBadFormat(t *testing.T) {
	g := NewWithT(t)

	_, err := dateparse.ParseTZ("")
	g.Expect(err).To(MatchError(dateparse.ErrBadFormat))
}
