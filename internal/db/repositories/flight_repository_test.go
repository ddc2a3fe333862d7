package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlightRepository_FindAllOrdersByDepartureDesc(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	airports := NewAirportRepository(db)
	flights := NewFlightRepository(db)

	lax := airport("LAX", "KLAX", "Los Angeles International Airport", "Los Angeles", "United States")
	jfk := airport("JFK", "KJFK", "John F. Kennedy International Airport", "New York", "United States")
	require.NoError(t, airports.Create(ctx, lax))
	require.NoError(t, airports.Create(ctx, jfk))

	older := flightBetween(lax, jfk, time.Date(2023, 5, 1, 12, 0, 0, 0, time.UTC))
	newer := flightBetween(jfk, lax, time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC))
	require.NoError(t, flights.Create(ctx, older))
	require.NoError(t, flights.Create(ctx, newer))

	all, err := flights.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, newer.ID, all[0].ID)
	assert.Equal(t, "JFK", all[0].DepartureAirport.DisplayCode())
	assert.Equal(t, "LAX", all[0].ArrivalAirport.DisplayCode())
}

func TestFlightRepository_DeleteLeavesAirports(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	airports := NewAirportRepository(db)
	flights := NewFlightRepository(db)

	lax := airport("LAX", "KLAX", "Los Angeles International Airport", "Los Angeles", "United States")
	jfk := airport("JFK", "KJFK", "John F. Kennedy International Airport", "New York", "United States")
	require.NoError(t, airports.Create(ctx, lax))
	require.NoError(t, airports.Create(ctx, jfk))

	f := flightBetween(lax, jfk, time.Date(2024, 1, 2, 12, 0, 0, 0, time.UTC))
	require.NoError(t, flights.Create(ctx, f))

	found, err := flights.Delete(ctx, f.ID)
	require.NoError(t, err)
	assert.True(t, found)

	count, err := airports.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)

	found, err = flights.Delete(ctx, f.ID)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestFlightRepository_UpdateMetadataKeepsAirports(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	airports := NewAirportRepository(db)
	flights := NewFlightRepository(db)

	lax := airport("LAX", "KLAX", "Los Angeles International Airport", "Los Angeles", "United States")
	jfk := airport("JFK", "KJFK", "John F. Kennedy International Airport", "New York", "United States")
	require.NoError(t, airports.Create(ctx, lax))
	require.NoError(t, airports.Create(ctx, jfk))

	f := flightBetween(lax, jfk, time.Date(2024, 1, 2, 12, 0, 0, 0, time.UTC))
	require.NoError(t, flights.Create(ctx, f))

	f.Airline = strPtr("Delta")
	f.DepartureAirportID = jfk.ID
	found, err := flights.UpdateMetadata(ctx, f)
	require.NoError(t, err)
	assert.True(t, found)

	stored, err := flights.FindByID(ctx, f.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	require.NotNil(t, stored.Airline)
	assert.Equal(t, "Delta", *stored.Airline)
	assert.Equal(t, lax.ID, stored.DepartureAirportID)

	f.ID = "missing"
	found, err = flights.UpdateMetadata(ctx, f)
	require.NoError(t, err)
	assert.False(t, found)
}
