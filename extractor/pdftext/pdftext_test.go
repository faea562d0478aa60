package pdftext

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNamesFromText(t *testing.T) {
	text := "Data Dictionary\n" +
		"Table Name: CUSTOMER\n" +
		"some unrelated line\n" +
		"Table Name：ACCOUNTS\n" +
		"Table Name B_PG_PICBX4008_TDA_ACCRUAL\n" +
		"Table Name\n" +
		"Table Name: CUSTOMER\n"

	assert.Equal(t,
		[]string{"CUSTOMER", "ACCOUNTS", "B_PG_PICBX4008_TDA_ACCRUAL", "CUSTOMER"},
		namesFromText(text),
		"optional ASCII or full-width colon, duplicates kept, empty names skipped")
}

func TestNamesFromTextEmpty(t *testing.T) {
	assert.Empty(t, namesFromText("no tables here"))
}

func TestTableNamesMissingFile(t *testing.T) {
	_, err := TableNames("does-not-exist.pdf")
	assert.Error(t, err)
}
