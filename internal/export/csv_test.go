package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"cordelia-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteDresses(t *testing.T) {
	dresses := []domain.Dress{
		{
			ID: 7, Size: 8, Color: "red", Style: "gala", Brand: "Vera",
			Cost: 4200, MarketPrice: 5000, RentPrice: 1800, RentsForReturns: 2,
			TimesRented: 3, Sellable: true,
			DateAdded: time.Date(2024, 2, 1, 10, 30, 0, 0, time.UTC),
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteDresses(&buf, dresses))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "id,size,color"))
	assert.Equal(t, "7,8,red,gala,Vera,,4200,5000,1800,2,3,true,false,false,false,2024-02-01", lines[1])
}

func TestWriteMaintenances_JoinsDressIDs(t *testing.T) {
	maintenances := []domain.Maintenance{
		{
			ID:         9,
			Date:       time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
			ReturnDate: time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC),
			Type:       domain.MaintenanceTypeCleaning,
			Cost:       240,
			DressIDs:   []int32{1, 5},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteMaintenances(&buf, maintenances))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "9,2024-03-04,2024-03-06,Cleaning,240,1 5", lines[1])
}

func TestWriteRents_EmptyStillHasHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteRents(&buf, nil))
	assert.Equal(t, "id,dress_id,customer_id,rent_date,return_date,payment_method,payment_total", strings.TrimSpace(buf.String()))
}
