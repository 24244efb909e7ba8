package services

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"wd_utils_go/models"
)

type maskCase struct {
	input string
	want  string
}

func runMaskCases(t *testing.T, mask func(string) string, cases []maskCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.want, mask(tc.input))
		})
	}
}

func TestFormatCPF(t *testing.T) {
	runMaskCases(t, FormatCPF, []maskCase{
		{"39633061067", "396.330.610-67"},
		{"53512417060", "535.124.170-60"},
		{"577566160", "577.566.160"},
		{"764984", "764.984"},
		{"396.330.610-67", "396.330.610-67"},
		{"396330610671234", "396.330.610-67"},
		{"", ""},
	})
}

func TestFormatCNPJ(t *testing.T) {
	runMaskCases(t, FormatCNPJ, []maskCase{
		{"89748855000109", "89.748.855/0001-09"},
		{"7529905100016", "75.299.051/0001-6"},
		{"913965870001", "91.396.587/0001"},
		{"47506157", "47.506.157"},
		{"78359", "78.359"},
	})
}

func TestFormatDocument(t *testing.T) {
	assert.Equal(t, "396.330.610-67", FormatDocument(models.DocumentTypeCPF, "39633061067"))
	assert.Equal(t, "89.748.855/0001-09", FormatDocument(models.DocumentTypeCNPJ, "89748855000109"))
}

func TestFormatCEP(t *testing.T) {
	runMaskCases(t, FormatCEP, []maskCase{
		{"29130278", "29130-278"},
		{"7169305", "71693-05"},
		{"693084", "69308-4"},
		{"40352", "40352"},
		{"291302789", "29130-278"},
	})
}

func TestFormatDateMask(t *testing.T) {
	runMaskCases(t, FormatDateMask, []maskCase{
		{"03021999", "03/02/1999"},
		{"2301202", "23/01/202"},
		{"300320", "30/03/20"},
		{"28022", "28/02/2"},
		{"1504", "15/04"},
		{"", ""},
	})
}

func TestFormatPhone(t *testing.T) {
	runMaskCases(t, FormatPhone, []maskCase{
		{"62994920570", "(62) 99492-0570"},
		{"6892566033", "(68) 9256-6033"},
		{"499916339", "(49) 9916-339"},
		{"062994920570", "(62) 99492-0570"},
		{"(62) 99492-0570", "(62) 99492-0570"},
	})
}

func TestFormatHourMinute(t *testing.T) {
	runMaskCases(t, FormatHourMinute, []maskCase{
		{"1234", "12:34"},
		{"0830", "08:30"},
		{"12a34", "12:34"},
		{"ab2359", "23:59"},
		{"07-15", "07:15"},
		{"12", "12"},
		{"8", "8"},
		{"123", "1:23"},
		{"830", "8:30"},
		{"", ""},
	})
}

func TestFormatDateTimeMask(t *testing.T) {
	runMaskCases(t, FormatDateTimeMask, []maskCase{
		{"030219991230", "03/02/1999 12:30"},
		{"230120212345", "23/01/2021 23:45"},
		{"2802202015", "28/02/2020 15"},
		{"150420201", "15/04/2020 1"},
		{"0101", "01/01"},
		{"010120", "01/01/20"},
		{"01012012", "01/01/2012"},
		{"0101201212", "01/01/2012 12"},
	})
}

func TestFormatDateValues(t *testing.T) {
	d := time.Date(2023, 10, 14, 8, 5, 7, 0, time.Local)
	assert.Equal(t, "14/10/2023", FormatDateValue(d))
	assert.Equal(t, "14/10/2023 08:05:07", FormatDateTimeValue(d))
	assert.Equal(t, "", FormatDateValue(time.Time{}))
	assert.Equal(t, "", FormatDateTimeValue(time.Time{}))
}

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{0, "R$ 0,00"},
		{2, "R$ 2,00"},
		{10, "R$ 10,00"},
		{0.65, "R$ 0,65"},
		{0.123, "R$ 0,12"},
		{0.13, "R$ 0,13"},
		{0.125, "R$ 0,13"},
		{1000, "R$ 1.000,00"},
		{123456.7, "R$ 123.456,70"},
		{1165799.9985, "R$ 1.165.800,00"},
		{-1234.5, "-R$ 1.234,50"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatCurrency(tt.value), "FormatCurrency(%v)", tt.value)
	}

	assert.Equal(t, "", FormatCurrency(math.NaN()))
	assert.Equal(t, "", FormatCurrency(math.Inf(1)))
}

func TestGroupThousands(t *testing.T) {
	assert.Equal(t, "1", groupThousands("1", "."))
	assert.Equal(t, "123", groupThousands("123", "."))
	assert.Equal(t, "1.234", groupThousands("1234", "."))
	assert.Equal(t, "123.456", groupThousands("123456", "."))
	assert.Equal(t, "1.234.567", groupThousands("1234567", "."))
}
