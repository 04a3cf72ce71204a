package day01

import (
	"testing"
)

func TestCalibrationValue(t *testing.T) {
	tests := []struct {
		line string
		want int
	}{
		{"1abc2", 12},
		{"pqr3stu8vwx", 38},
		{"a1b2c3d4e5f", 15},
		{"treb7uchet", 77},
	}
	for _, tt := range tests {
		got, ok := CalibrationValue(tt.line)
		if !ok || got != tt.want {
			t.Errorf("CalibrationValue(%q) = %d, %v; want %d", tt.line, got, ok, tt.want)
		}
	}
}

func TestCalibrationValue_NoDigits(t *testing.T) {
	if _, ok := CalibrationValue("eightwothree"); ok {
		t.Error("expected no value for a line without digits")
	}
	if _, ok := WrittenCalibrationValue("abc"); ok {
		t.Error("expected no written value for a line without digits")
	}
}

func TestWrittenCalibrationValue(t *testing.T) {
	tests := []struct {
		line string
		want int
	}{
		{"two1nine", 29},
		{"eightwothree", 83},
		{"abcone2threexyz", 13},
		{"xtwone3four", 24},
		{"4nineeightseven2", 42},
		{"zoneight234", 14},
		{"7pqrstsixteen", 76},
		{"eightwo", 82},
	}
	for _, tt := range tests {
		got, ok := WrittenCalibrationValue(tt.line)
		if !ok || got != tt.want {
			t.Errorf("WrittenCalibrationValue(%q) = %d, %v; want %d", tt.line, got, ok, tt.want)
		}
	}
}

func TestSolve(t *testing.T) {
	answers, err := Puzzle{}.Solve("1abc2\npqr3stu8vwx\na1b2c3d4e5f\ntreb7uchet\n")
	if err != nil {
		t.Fatalf("solve: %v", err)
	}
	if len(answers) != 2 {
		t.Fatalf("expected 2 answers, got %d", len(answers))
	}
	if answers[0].Value != 142 {
		t.Errorf("part 1 = %d, want 142", answers[0].Value)
	}
}
