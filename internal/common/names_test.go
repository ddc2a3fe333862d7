package common

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeCountryName(t *testing.T) {
	cases := map[string]string{
		"GERMANY":                  "Germany",
		"":                         "Unknown",
		"   ":                      "Unknown",
		"UNITED STATES OF AMERICA": "United States Of America",
		"united kingdom":           "United Kingdom",
		"bOSNIA AND hERZEGOVINA":   "Bosnia And Herzegovina",
		"GUINEA-BISSAU":            "Guinea-bissau",
		"CÔTE D'IVOIRE":            "Côte D'ivoire",
	}

	for in, want := range cases {
		assert.Equal(t, want, NormalizeCountryName(in), "input %q", in)
	}
}

func TestNormalizeCountryNamePtr(t *testing.T) {
	assert.Equal(t, "Unknown", NormalizeCountryNamePtr(nil))
	austria := "AUSTRIA"
	assert.Equal(t, "Austria", NormalizeCountryNamePtr(&austria))
}

func TestNormalizeCityName(t *testing.T) {
	assert.Equal(t, "Frankfurt Am Main", NormalizeCityName("FRANKFURT AM MAIN"))
	assert.Equal(t, "São Paulo", NormalizeCityName("SÃO PAULO"))
	assert.Equal(t, "Unknown", NormalizeCityName(""))
	assert.Equal(t, "Unknown", NormalizeCityNamePtr(nil))
}

func TestNormalizeNamesAreIdempotent(t *testing.T) {
	f := gofakeit.New(42)

	inputs := []string{"", "GERMANY", "new  york", "ÅLAND ISLANDS", "o'hare", "\tmixed\nWHITESPACE "}
	for i := 0; i < 200; i++ {
		inputs = append(inputs, f.Country(), f.City(), f.Word()+" "+f.Word())
	}

	for _, s := range inputs {
		once := NormalizeCountryName(s)
		assert.Equal(t, once, NormalizeCountryName(once), "country %q", s)

		city := NormalizeCityName(s)
		assert.Equal(t, city, NormalizeCityName(city), "city %q", s)
	}
}

func TestNormalizeCountryAlias(t *testing.T) {
	assert.Equal(t, "united states of america", NormalizeCountryAlias("USA"))
	assert.Equal(t, "united states of america", NormalizeCountryAlias("us"))
	assert.Equal(t, "united kingdom", NormalizeCountryAlias("UK"))
	assert.Equal(t, "united arab emirates", NormalizeCountryAlias("UAE"))
	assert.Equal(t, "germany", NormalizeCountryAlias("Germany"))
}

func TestCountryNormalizersDiffer(t *testing.T) {
	// storage form and boundary-matching form are different on purpose
	assert.Equal(t, "Usa", NormalizeCountryName("USA"))
	assert.Equal(t, "united states of america", NormalizeCountryAlias("USA"))
}
