package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceItemsTotalPrice(t *testing.T) {
	tests := []struct {
		name     string
		items    ServiceItems
		expected float64
	}{
		{"empty list", ServiceItems{}, 0},
		{
			"all enabled",
			ServiceItems{
				{ItemName: "Casket", Price: 1500, Enabled: true},
				{ItemName: "Hearse", Price: 300, Enabled: true},
			},
			1800,
		},
		{
			"disabled items skipped",
			ServiceItems{
				{ItemName: "Casket", Price: 1500, Enabled: true},
				{ItemName: "Flowers", Price: 120, Enabled: false},
				{ItemName: "Hearse", Price: 300, Enabled: true},
			},
			1800,
		},
		{
			"all disabled",
			ServiceItems{
				{ItemName: "Casket", Price: 1500, Enabled: false},
				{ItemName: "Hearse", Price: 300, Enabled: false},
			},
			0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.items.TotalPrice())
		})
	}
}

func TestServiceItemsJSONTags(t *testing.T) {
	raw := `[{"itemName":"Chapel use","price":250.5,"enabled":true}]`
	var items ServiceItems
	require.NoError(t, json.Unmarshal([]byte(raw), &items))
	require.Len(t, items, 1)
	assert.Equal(t, "Chapel use", items[0].ItemName)
	assert.Equal(t, 250.5, items[0].Price)
	assert.True(t, items[0].Enabled)
}

func TestContactSetRead(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	contact := Contact{}

	contact.SetRead(true, now)
	assert.True(t, contact.IsRead)
	require.NotNil(t, contact.ReadAt)
	assert.Equal(t, now, *contact.ReadAt)

	contact.SetRead(false, now.Add(time.Hour))
	assert.False(t, contact.IsRead)
	assert.Nil(t, contact.ReadAt)
}

func TestGalleryCategoryLookup(t *testing.T) {
	for _, category := range GalleryCategories {
		assert.True(t, IsGalleryCategory(category), category)
	}
	assert.False(t, IsGalleryCategory("garden"))
	assert.False(t, IsGalleryCategory(""))
	assert.False(t, IsGalleryCategory("Chapel"))
}

func TestStaffRoleLookup(t *testing.T) {
	for _, role := range StaffRoles {
		assert.True(t, IsStaffRole(role), role)
	}
	assert.True(t, IsStaffRole(DefaultStaffRole))
	assert.False(t, IsStaffRole("Intern"))
	assert.False(t, IsStaffRole("staff"))
}
