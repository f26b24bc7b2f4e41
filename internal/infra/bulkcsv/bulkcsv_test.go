package bulkcsv

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skyelectro/internal/domain/entity"
)

const sampleHeader = "name,description,price,original_price,discount,stock,category,brand,specifications,features,tags,images,dimensions,sku,is_active,is_featured"

func sampleRow(name string) string {
	return name + ",A fine gadget,999,,0,10,Accessories,Acme,Color:Black,Compact,gadget,,,,true,false"
}

func TestParse_RowNumbersCountHeader(t *testing.T) {
	input := sampleHeader + "\n" + sampleRow("First") + "\n" + sampleRow("Second")

	records, badRows, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.Empty(t, badRows)
	require.Len(t, records, 2)
	assert.Equal(t, 2, records[0].Row)
	assert.Equal(t, 3, records[1].Row)
	assert.Equal(t, "First", records[0].Name)
}

func TestParse_HeaderMismatch(t *testing.T) {
	_, _, err := Parse(strings.NewReader("name,price\nWidget,5"))
	assert.ErrorIs(t, err, ErrHeaderMismatch)
}

func TestParse_EmptyFile(t *testing.T) {
	_, _, err := Parse(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrHeaderMismatch)
}

func TestParse_MalformedRowDoesNotAbortBatch(t *testing.T) {
	input := sampleHeader + "\n" + sampleRow("Good") + "\nonly,three,fields\n" + sampleRow("AlsoGood")

	records, badRows, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.Len(t, badRows, 1)
	assert.Equal(t, 3, badRows[0].Row)
	assert.Equal(t, "Good", records[0].Name)
	assert.Equal(t, "AlsoGood", records[1].Name)
	assert.Equal(t, 4, records[1].Row)
}

func TestTemplate_ParsesBack(t *testing.T) {
	records, badRows, err := Parse(bytes.NewReader(Template()))
	require.NoError(t, err)
	assert.Empty(t, badRows)
	require.Len(t, records, 1)
	assert.Equal(t, "Wireless Mouse M220", records[0].Name)
	assert.Equal(t, "ACC-LOG-WIR-042", records[0].SKU)
}

func TestParseSpecifications_DropsMalformedSilently(t *testing.T) {
	specs := ParseSpecifications("Connectivity:2.4 GHz|no-colon-here|:missing name|Battery: AA x1|Empty:")
	assert.Equal(t, []entity.Specification{
		{Name: "Connectivity", Value: "2.4 GHz"},
		{Name: "Battery", Value: "AA x1"},
	}, specs)
}

func TestParseSpecifications_Empty(t *testing.T) {
	assert.Nil(t, ParseSpecifications(""))
}

func TestParseList(t *testing.T) {
	assert.Equal(t, []string{"Silent clicks", "Plug and play"}, ParseList("Silent clicks| Plug and play |"))
	assert.Nil(t, ParseList(""))
}
