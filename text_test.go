package preciossuperpy

import (
	"reflect"
	"testing"
)

func TestNormalize(t *testing.T) {
	tts := []struct {
		In       string
		Expected string
	}{
		{In: "Azúcar", Expected: "azucar"},
		{In: "CATEGORÍA", Expected: "categoria"},
		{In: "Panadería y Confitería", Expected: "panaderia y confiteria"},
		{In: "limón", Expected: "limon"},
		{In: "plain", Expected: "plain"},
	}

	for _, tt := range tts {
		if got := Normalize(tt.In); got != tt.Expected {
			t.Errorf("Normalize(%q): expected %q got %q", tt.In, tt.Expected, got)
		}
	}
}

func TestTokenize(t *testing.T) {
	tts := []struct {
		In       string
		Expected []string
	}{
		{
			In:       "LECHE ENTERA 1L",
			Expected: []string{"leche", "entera", "l"},
		},
		{
			In:       "Pan Francés x 6",
			Expected: []string{"pan", "frances", "x"},
		},
		{
			In:       "  ",
			Expected: nil,
		},
	}

	for _, tt := range tts {
		if got := Tokenize(tt.In); !reflect.DeepEqual(got, tt.Expected) {
			t.Errorf("Tokenize(%q): expected %v got %v", tt.In, tt.Expected, got)
		}
	}
}
