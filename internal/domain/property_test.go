package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPropertyJSON_LandlordVariantFlattens(t *testing.T) {
	p := Property{
		ID:    "p1",
		Title: "Kilimani Flat",
		Type:  PropertyRental,
		Management: Management{
			Kind:     ManagedByLandlord,
			Name:     "Jane Wanjiru",
			Verified: true,
		},
	}

	data, err := json.Marshal(p)
	require.NoError(t, err)

	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &raw))

	assert.Equal(t, "landlord", raw["managed_by"])
	assert.Equal(t, "Jane Wanjiru", raw["landlord_name"])
	assert.Equal(t, true, raw["landlord_verified"])

	// The other variant's columns must not leak out.
	_, ok := raw["agency_name"]
	assert.False(t, ok)
	_, ok = raw["agency_verified"]
	assert.False(t, ok)
}

func TestPropertyJSON_UnmanagedOmitsAllManagementFields(t *testing.T) {
	data, err := json.Marshal(Property{ID: "p1", Title: "Plain", Type: PropertyOffice})
	require.NoError(t, err)

	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &raw))

	for _, key := range []string{"managed_by", "landlord_name", "landlord_verified", "agency_name", "agency_verified"} {
		_, ok := raw[key]
		assert.Falsef(t, ok, "%s should be absent", key)
	}
}

func TestPropertyJSON_RoundTrip(t *testing.T) {
	in := Property{
		ID:        "p1",
		Title:     "Beach Villa",
		Location:  "Nyali",
		Price:     150000,
		PriceType: PricePerNight,
		Bedrooms:  5,
		Type:      PropertyAirbnb,
		Featured:  true,
		Management: Management{
			Kind:     ManagedByAgency,
			Name:     "Coast Stays",
			Verified: true,
		},
	}

	data, err := json.Marshal(in)
	require.NoError(t, err)

	var out Property
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in.Management, out.Management)
	assert.Equal(t, in.Title, out.Title)
	assert.Equal(t, in.PriceType, out.PriceType)
}

func TestRoomCategory(t *testing.T) {
	assert.Equal(t, "Single Room", (&Property{Bedrooms: BedroomsSingleRoom}).RoomCategory())
	assert.Equal(t, "Bedsitter", (&Property{Bedrooms: BedroomsBedsitter}).RoomCategory())
	assert.Equal(t, "", (&Property{Bedrooms: 3}).RoomCategory())
}
