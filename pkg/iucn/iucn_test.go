package iucn_test

import (
	"strings"
	"testing"

	"github.com/gnames/fishfeat/pkg/errcode"
	"github.com/gnames/fishfeat/pkg/frame"
	"github.com/gnames/fishfeat/pkg/iucn"
	"github.com/gnames/gn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCapitalize(t *testing.T) {
	tests := []struct {
		msg, inp, out string
	}{
		{"upper", "ACTINOPTERYGII", "Actinopterygii"},
		{"lower", "chondrichthyes", "Chondrichthyes"},
		{"mixed", "sARCOPTERYGII", "Sarcopterygii"},
		{"empty", "", ""},
		{"non-ascii", "édentata", "Édentata"},
	}

	for _, v := range tests {
		assert.Equal(t, v.out, iucn.Capitalize(v.inp), v.msg)
	}
}

func TestSubset(t *testing.T) {
	data := `Kingdom,Class,Order,Family,Genus,Species,Red List status
ANIMALIA,ACTINOPTERYGII,PERCIFORMES,CICHLIDAE,Tilapia,guinasana,CR
ANIMALIA,MAMMALIA,CARNIVORA,URSIDAE,Ursus,maritimus,VU
ANIMALIA,Chondrichthyes,lamniformes,lamnidae,Carcharodon,carcharias,VU
ANIMALIA,,,,Incertae,sedis,DD
ANIMALIA,cephalaspidomorphi,PETROMYZONTIFORMES,PETROMYZONTIDAE,Lampetra,fluviatilis,LC
`
	f, err := frame.ReadCSV(strings.NewReader(data))
	require.NoError(t, err)

	res, err := iucn.Subset(f)
	require.NoError(t, err)

	assert.Equal(t, iucn.Columns, res.Columns())
	assert.Equal(t, 3, res.Len())
	assert.Equal(t, []int{0, 2, 4}, res.Labels())

	assert.Equal(t, frame.Str("Actinopterygii"), res.Value(0, "Class"))
	assert.Equal(t, frame.Str("Perciformes"), res.Value(0, "Order"))
	assert.Equal(t, frame.Str("Cichlidae"), res.Value(0, "Family"))
	assert.Equal(t, frame.Str("Tilapia"), res.Value(0, "Genus"))
	assert.Equal(t, frame.Str("Lamnidae"), res.Value(1, "Family"))
	assert.Equal(t, frame.Str("Cephalaspidomorphi"), res.Value(2, "Class"))
	assert.Equal(t, frame.Str("LC"), res.Value(2, "Red List status"))
}

func TestSubsetMissingColumns(t *testing.T) {
	f := frame.New("Class", "Order", "Family", "Genus", "Species")
	_, err := iucn.Subset(f)
	require.Error(t, err)

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.FrameMissingColumnsError, gnErr.Code)
	assert.Equal(t, "Red List status", gnErr.Vars[0])
}

func TestIsFish(t *testing.T) {
	assert.True(t, iucn.IsFish("Sarcopterygii"))
	assert.False(t, iucn.IsFish("Mammalia"))
	assert.False(t, iucn.IsFish("actinopterygii"))
}
