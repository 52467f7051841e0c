package frame_test

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/gnames/fishfeat/pkg/errcode"
	"github.com/gnames/fishfeat/pkg/frame"
	"github.com/gnames/gn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() *frame.Frame {
	f := frame.New("SpecCode", "Area", "Climate")
	f.AddRow(frame.Num(1), frame.Num(10), frame.Str("tropical"))
	f.AddRow(frame.Num(1), frame.NA(), frame.Str("temperate"))
	f.AddRow(frame.Num(1), frame.Num(5), frame.Str("tropical"))
	f.AddRow(frame.Num(2), frame.NA(), frame.NA())
	f.AddRow(frame.NA(), frame.Num(7), frame.Str("polar"))
	return f
}

func TestValue(t *testing.T) {
	assert := assert.New(t)

	assert.True(frame.NA().IsNA())
	assert.True(frame.Num(0).Kind() == frame.Number)
	assert.True(frame.Num(math.NaN()).IsNA(), "NaN is missing")

	n, ok := frame.Str(" 12.5 ").Float()
	assert.True(ok)
	assert.Equal(12.5, n)

	_, ok = frame.Str("deep").Float()
	assert.False(ok)
	assert.True(frame.Str("deep").ToNumber().IsNA())

	assert.Equal("15", frame.Num(15).String())
	assert.Equal("3.5", frame.Num(3.5).String())
	assert.Equal("", frame.NA().String())

	assert.Equal(frame.Num(1), frame.Of(true))
	assert.Equal(frame.Str("x"), frame.Of("x"))
	assert.True(frame.Of(nil).IsNA())

	assert.Negative(frame.Compare(frame.Num(2), frame.Num(10)))
	assert.Negative(frame.Compare(frame.Num(2), frame.Str("a")))
	assert.Positive(frame.Compare(frame.NA(), frame.Str("a")))
}

func TestSelect(t *testing.T) {
	f := sample()

	res, err := f.Select("Climate", "SpecCode")
	require.NoError(t, err)
	assert.Equal(t, []string{"Climate", "SpecCode"}, res.Columns())
	assert.Equal(t, 5, res.Len())
	assert.Equal(t, frame.Str("temperate"), res.Value(1, "Climate"))

	_, err = f.Select("SpecCode", "Depth", "Salinity")
	require.Error(t, err)
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.FrameMissingColumnsError, gnErr.Code)
	assert.Equal(t, "Depth, Salinity", gnErr.Vars[0])
}

func TestFilterKeepsLabels(t *testing.T) {
	f := sample()
	res := f.Filter(func(r frame.Row) bool {
		return r.Get("Climate") == frame.Str("tropical")
	})
	assert.Equal(t, 2, res.Len())
	assert.Equal(t, []int{0, 2}, res.Labels())
}

func TestRenameDropApply(t *testing.T) {
	f := sample()
	require.NoError(t, f.Rename("SpecCode", "Speccode"))
	assert.True(t, f.Has("Speccode"))
	assert.False(t, f.Has("SpecCode"))
	require.Error(t, f.Rename("Nope", "Other"))

	res := f.Drop("Area", "Unknown")
	assert.Equal(t, []string{"Speccode", "Climate"}, res.Columns())

	err := f.Apply(func(v frame.Value) frame.Value {
		if v.IsNA() {
			return frame.Str("none")
		}
		return frame.Str(strings.ToUpper(v.String()))
	}, "Climate")
	require.NoError(t, err)
	assert.Equal(t, frame.Str("TROPICAL"), f.Value(0, "Climate"))
	assert.Equal(t, frame.Str("none"), f.Value(3, "Climate"))
}

func TestGroupBy(t *testing.T) {
	f := sample()
	g, err := f.GroupBy("SpecCode")
	require.NoError(t, err)
	assert.Equal(t, 2, g.Len(), "missing key is dropped")

	t.Run("sum ignores missing", func(t *testing.T) {
		res, err := g.Sum("Area")
		require.NoError(t, err)
		assert.Equal(t, []string{"SpecCode", "Area"}, res.Columns())
		assert.Equal(t, frame.Num(15), res.Value(0, "Area"))
		assert.Equal(t, frame.Num(0), res.Value(1, "Area"),
			"all-missing group sums to zero")
	})

	t.Run("mean ignores missing", func(t *testing.T) {
		res, err := g.Mean("Area")
		require.NoError(t, err)
		assert.Equal(t, frame.Num(7.5), res.Value(0, "Area"))
		assert.True(t, res.Value(1, "Area").IsNA(),
			"all-missing group has missing mean")
	})

	t.Run("groups are sorted by key", func(t *testing.T) {
		h := frame.New("k", "v")
		h.AddRow(frame.Num(30), frame.Num(1))
		h.AddRow(frame.Num(4), frame.Num(2))
		h.AddRow(frame.Num(30), frame.Num(3))
		res, err := h.GroupBy("k")
		require.NoError(t, err)
		sum, err := res.Sum("v")
		require.NoError(t, err)
		assert.Equal(t, frame.Num(4), sum.Value(0, "k"))
		assert.Equal(t, frame.Num(4), sum.Value(1, "v"))
	})

	_, err = f.GroupBy("Nope")
	assert.Error(t, err)
}

func TestRowMin(t *testing.T) {
	f := frame.New("a", "b")
	f.AddRow(frame.Num(3), frame.Num(4))
	f.AddRow(frame.Num(5), frame.NA())
	f.AddRow(frame.NA(), frame.NA())
	f.AddRow(frame.Str("x"), frame.Num(-1))

	require.NoError(t, f.RowMin("min", "a", "b"))
	col, err := f.Column("min")
	require.NoError(t, err)
	assert.Equal(t, []frame.Value{
		frame.Num(3), frame.Num(5), frame.NA(), frame.Num(-1),
	}, col)
}

func TestDummies(t *testing.T) {
	f := frame.New("Importance")
	f.AddRow(frame.Str("minor commercial"))
	f.AddRow(frame.Str("commercial"))
	f.AddRow(frame.NA())
	f.AddRow(frame.Str("minor commercial"))

	res, err := f.Dummies("Importance", "Imp", false)
	require.NoError(t, err)
	assert.Equal(t,
		[]string{"Imp_commercial", "Imp_minor commercial"}, res.Columns())
	assert.Equal(t, []frame.Value{frame.Num(0), frame.Num(1)}, res.Row(0))
	assert.Equal(t, []frame.Value{frame.Num(0), frame.Num(0)}, res.Row(2))

	res, err = f.Dummies("Importance", "Imp", true)
	require.NoError(t, err)
	assert.Equal(t, []string{"Imp_minor commercial"}, res.Columns())
}

func TestOneHotTop(t *testing.T) {
	f := frame.New("Climate")
	for _, v := range []string{"b", "a", "b", "c", "d"} {
		f.AddRow(frame.Str(v))
	}
	res, err := f.OneHotTop("Climate", "Climate", 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"Climate_b", "Climate_a"}, res.Columns())
	assert.Equal(t, []frame.Value{frame.Num(1), frame.Num(0)}, res.Row(0))
	assert.Equal(t, []frame.Value{frame.Num(0), frame.Num(0)}, res.Row(3),
		"category outside of top k gets zeros")

	res, err = f.OneHotTop("Climate", "Climate", 10)
	require.NoError(t, err)
	assert.Equal(t, 4, res.Width())
}

func TestConcat(t *testing.T) {
	a := frame.New("a")
	a.AddRow(frame.Num(1))
	b := frame.New("b")
	b.AddRow(frame.Num(2))

	res, err := frame.Concat(a, b)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, res.Columns())

	b.AddRow(frame.Num(3))
	_, err = frame.Concat(a, b)
	assert.Error(t, err)
}

func TestLeftJoin(t *testing.T) {
	left := frame.New("SpecCode", "Genus")
	left.AddRow(frame.Num(2), frame.Str("Salmo"))
	left.AddRow(frame.Num(1), frame.Str("Gadus"))
	left.AddRow(frame.Num(3), frame.Str("Esox"))

	r1 := frame.New("SpecCode", "Area")
	r1.AddRow(frame.Num(1), frame.Num(15))
	r1.AddRow(frame.Num(9), frame.Num(1))

	r2 := frame.New("Depth", "SpecCode")
	r2.AddRow(frame.Num(100), frame.Num(2))

	res, err := frame.LeftJoin("SpecCode", left, r1, r2)
	require.NoError(t, err)
	assert.Equal(t, []string{"SpecCode", "Genus", "Area", "Depth"},
		res.Columns())
	assert.Equal(t, 3, res.Len())

	assert.Equal(t, []frame.Value{
		frame.Num(2), frame.Str("Salmo"), frame.NA(), frame.Num(100),
	}, res.Row(0))
	assert.Equal(t, []frame.Value{
		frame.Num(1), frame.Str("Gadus"), frame.Num(15), frame.NA(),
	}, res.Row(1))
	assert.Equal(t, []frame.Value{
		frame.Num(3), frame.Str("Esox"), frame.NA(), frame.NA(),
	}, res.Row(2))

	r1.AddRow(frame.Num(1), frame.Num(2))
	_, err = frame.LeftJoin("SpecCode", left, r1)
	require.Error(t, err)
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.FrameDuplicateKeyError, gnErr.Code)
}

func TestDropDuplicates(t *testing.T) {
	f := sample()
	res, err := f.DropDuplicates("SpecCode")
	require.NoError(t, err)
	assert.Equal(t, []int{0, 3, 4}, res.Labels())
}

func TestReadCSV(t *testing.T) {
	t.Run("reads header and values", func(t *testing.T) {
		data := "Class,Genus,Status\nMAMMALIA,Ursus,LC\nactinopterygii,,NA\n"
		f, err := frame.ReadCSV(strings.NewReader(data))
		require.NoError(t, err)
		assert.Equal(t, []string{"Class", "Genus", "Status"}, f.Columns())
		assert.Equal(t, 2, f.Len())
		assert.Equal(t, frame.Str("Ursus"), f.Value(0, "Genus"))
		assert.True(t, f.Value(1, "Genus").IsNA())
		assert.True(t, f.Value(1, "Status").IsNA())
	})

	t.Run("pads short rows", func(t *testing.T) {
		f, err := frame.ReadCSV(strings.NewReader("a,b\n1\n"))
		require.NoError(t, err)
		assert.True(t, f.Value(0, "b").IsNA())
	})

	t.Run("fails on long rows", func(t *testing.T) {
		_, err := frame.ReadCSV(strings.NewReader("a,b\n1,2,3\n"))
		require.Error(t, err)
		gnErr, ok := err.(*gn.Error)
		require.True(t, ok)
		assert.Equal(t, errcode.FrameParseCSVError, gnErr.Code)
	})

	t.Run("keeps bare quotes", func(t *testing.T) {
		data := "Genus,Status,Name\nLepomis,LC,12\" redbelly\n" +
			"Salmo,VU,\"quoted, with comma\"\n"
		f, err := frame.ReadCSV(strings.NewReader(data))
		require.NoError(t, err)
		require.Equal(t, 2, f.Len())
		assert.Equal(t, frame.Str(`12" redbelly`), f.Value(0, "Name"))
		assert.Equal(t, frame.Str("quoted, with comma"), f.Value(1, "Name"))
	})

	t.Run("fails on long rows with bare quotes", func(t *testing.T) {
		_, err := frame.ReadCSV(strings.NewReader("a,b\n1\",2,3\n"))
		require.Error(t, err)
		gnErr, ok := err.(*gn.Error)
		require.True(t, ok)
		assert.Equal(t, errcode.FrameParseCSVError, gnErr.Code)
	})

	t.Run("empty input", func(t *testing.T) {
		f, err := frame.ReadCSV(strings.NewReader(""))
		require.NoError(t, err)
		assert.Equal(t, 0, f.Len())
	})
}

func TestFromRecords(t *testing.T) {
	recs := []map[string]any{
		{"SpecCode": 2.0, "Genus": "Salmo"},
		{"SpecCode": 3.0, "Species": "lucius", "Genus": nil},
	}
	f := frame.FromRecords(recs)
	assert.Equal(t, []string{"Genus", "SpecCode", "Species"}, f.Columns())
	assert.True(t, f.Value(0, "Species").IsNA())
	assert.True(t, f.Value(1, "Genus").IsNA())
	assert.Equal(t, frame.Num(3), f.Value(1, "SpecCode"))
}

func TestWriteCSV(t *testing.T) {
	f := sample()
	sub := f.Filter(func(r frame.Row) bool {
		return !r.Get("Area").IsNA()
	})

	var buf bytes.Buffer
	require.NoError(t, sub.WriteCSV(&buf, true))
	exp := ",SpecCode,Area,Climate\n" +
		"0,1,10,tropical\n" +
		"2,1,5,tropical\n" +
		"4,,7,polar\n"
	assert.Equal(t, exp, buf.String())

	buf.Reset()
	require.NoError(t, sub.WriteCSV(&buf, false))
	assert.True(t, strings.HasPrefix(buf.String(), "SpecCode,Area,Climate\n"))
}
