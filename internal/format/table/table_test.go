package table

import (
	"reflect"
	"testing"
)

func TestFormatPadsColumns(t *testing.T) {
	rows := [][]string{
		{"Switch to dev", "enter"},
		{"Copy name", "y"},
		{"Quit"},
	}
	got := Format(rows, []Alignment{AlignLeft, AlignRight})
	want := []string{
		"Switch to dev  enter",
		"Copy name          y",
		"Quit                ",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected rows:\n%q\nwant:\n%q", got, want)
	}
}

func TestWidthsCountCellsNotBytes(t *testing.T) {
	got := Widths([][]string{{"Windows ▸", "\x1b[1mab\x1b[0m"}})
	if want := []int{9, 2}; !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestFormatEmpty(t *testing.T) {
	if got := Format(nil, nil); got != nil {
		t.Fatalf("expected nil, got %#v", got)
	}
}
