package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecotourism/internal/models"
)

func TestEventRegistry_CRUD(t *testing.T) {
	kv := newFakeKV()
	ctx := context.Background()
	reg := NewEventRegistry(ctx, kv)

	event := reg.Add(ctx, models.CalendarEvent{
		Title:  "Эко-марафон",
		Date:   "2024-08-05",
		Type:   models.TypeEcoEvent,
		Region: "Астана",
		Status: models.StatusActive,
	})
	require.NotEmpty(t, event.ID)

	got, ok := reg.GetByID(event.ID)
	require.True(t, ok)
	assert.Equal(t, "Эко-марафон", got.Title)

	event.Title = "Эко-марафон 2024"
	require.True(t, reg.Update(ctx, event.ID, event))

	got, _ = reg.GetByID(event.ID)
	assert.Equal(t, "Эко-марафон 2024", got.Title)

	require.True(t, reg.Delete(ctx, event.ID))
	_, ok = reg.GetByID(event.ID)
	assert.False(t, ok)

	// повторное удаление - no-op
	assert.False(t, reg.Delete(ctx, event.ID))
}

func TestEventRegistry_PersistsAcrossReload(t *testing.T) {
	kv := newFakeKV()
	ctx := context.Background()
	reg := NewEventRegistry(ctx, kv)

	reg.Add(ctx, models.CalendarEvent{Title: "A", Type: models.TypeHoliday, Status: models.StatusActive})
	reg.Add(ctx, models.CalendarEvent{Title: "B", Type: models.TypeNews, Status: models.StatusActive})

	reloaded := NewEventRegistry(ctx, kv)
	events := reloaded.List()

	require.Len(t, events, 2)
	assert.Equal(t, "A", events[0].Title)
	assert.Equal(t, "B", events[1].Title)
}

func TestEventRegistry_EmptyOnFirstRun(t *testing.T) {
	kv := newFakeKV()
	reg := NewEventRegistry(context.Background(), kv)

	// события заводятся вручную, начальный список пуст
	assert.Empty(t, reg.List())
}

func TestEventRegistry_RecoversFromCorruptData(t *testing.T) {
	kv := newFakeKV()
	ctx := context.Background()
	require.NoError(t, kv.Set(ctx, KeyEvents, "не json"))

	reg := NewEventRegistry(ctx, kv)

	assert.Empty(t, reg.List())

	// хранилище перезаписано валидным пустым списком
	raw, err := kv.Get(ctx, KeyEvents)
	require.NoError(t, err)
	assert.Equal(t, "null", raw)
}

func TestEventRegistry_Reset(t *testing.T) {
	kv := newFakeKV()
	ctx := context.Background()
	reg := NewEventRegistry(ctx, kv)

	reg.Add(ctx, models.CalendarEvent{Title: "A", Type: models.TypeNews, Status: models.StatusActive})
	reg.Reset(ctx)

	assert.Empty(t, reg.List())
	_, err := kv.Get(ctx, KeyEvents)
	assert.ErrorIs(t, err, ErrKeyNotFound)
}
