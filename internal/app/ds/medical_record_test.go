package ds

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrimaryImage(t *testing.T) {
	assert.Nil(t, PrimaryImage(nil))
	assert.Nil(t, PrimaryImage([]MedicalRecordImage{}))

	images := []MedicalRecordImage{
		{ID: 1, SortOrder: 2},
		{ID: 2, SortOrder: 0},
		{ID: 3, SortOrder: 1},
	}
	primary := PrimaryImage(images)
	require.NotNil(t, primary)
	assert.Equal(t, uint(2), primary.ID)
}

func TestPrimaryImageTieKeepsFirst(t *testing.T) {
	images := []MedicalRecordImage{
		{ID: 5, SortOrder: 0},
		{ID: 6, SortOrder: 0},
	}
	primary := PrimaryImage(images)
	require.NotNil(t, primary)
	assert.Equal(t, uint(5), primary.ID)
}

func TestSetPrimaryMirrorsImage(t *testing.T) {
	record := &MedicalRecord{}
	record.SetPrimary(&MedicalRecordImage{
		FilePath: "http://files/bucket/a.png",
		FileName: "a.png",
		FileType: "image/png",
		FileSize: 1234,
	})

	assert.True(t, record.HasFile())
	assert.Equal(t, "http://files/bucket/a.png", record.FilePath)
	assert.Equal(t, "a.png", record.FileName)
	assert.Equal(t, "image/png", record.FileType)
	require.NotNil(t, record.FileSize)
	assert.Equal(t, int64(1234), *record.FileSize)
}

func TestSetPrimaryNilClearsEverything(t *testing.T) {
	size := int64(10)
	record := &MedicalRecord{
		FilePath: "http://files/bucket/a.png",
		FileName: "a.png",
		FileType: "image/png",
		FileSize: &size,
	}
	record.SetPrimary(nil)

	assert.False(t, record.HasFile())
	assert.Empty(t, record.FilePath)
	assert.Empty(t, record.FileName)
	assert.Empty(t, record.FileType)
	assert.Nil(t, record.FileSize)
}
