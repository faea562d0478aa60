package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRowCell(t *testing.T) {
	row := Row{"", "nan", "cust_id", "VARCHAR"}

	assert.Equal(t, "", row.Cell(0))
	assert.Equal(t, "nan", row.Cell(1))
	assert.Equal(t, "cust_id", row.Cell(2))
	assert.Equal(t, "", row.Cell(4), "absent column reads as empty")
	assert.Equal(t, "", row.Cell(-1))
	assert.Equal(t, "", Row(nil).Cell(2))
}

func TestMissing(t *testing.T) {
	assert.True(t, Missing(""))
	assert.True(t, Missing("nan"))
	assert.False(t, Missing("NaN"), "the sentinel is the literal the renderer writes")
	assert.False(t, Missing("cust_id"))
}
