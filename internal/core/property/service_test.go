package property_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"webby.dev/backend/internal/core/property"
	"webby.dev/backend/internal/pkg/weberr"
)

func newService(t *testing.T) *property.Service {
	t.Helper()
	return property.NewService(newRepo(t))
}

func TestCreateThenList(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	_, err := svc.CreateProperty(ctx, "Lakeview")
	require.NoError(t, err)
	_, err = svc.CreateProperty(ctx, "Acorn")
	require.NoError(t, err)

	properties, err := svc.ListProperties(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Acorn", "Lakeview"}, names(properties))
}

func TestCreateTrimsName(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	created, err := svc.CreateProperty(ctx, "  Birch  ")
	require.NoError(t, err)
	assert.Equal(t, "Birch", created.Name)
}

func TestEmptyNameIsRejectedWithoutWriting(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	for _, name := range []string{"", "   ", "\t\n"} {
		_, err := svc.CreateProperty(ctx, name)
		assert.ErrorIs(t, err, property.ErrEmptyName)
	}

	properties, err := svc.ListProperties(ctx)
	require.NoError(t, err)
	assert.Empty(t, properties)
}

func TestUpdateRejectsEmptyName(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	created, err := svc.CreateProperty(ctx, "Lakeview")
	require.NoError(t, err)

	assert.ErrorIs(t, svc.UpdateProperty(ctx, created.ID, " "), property.ErrEmptyName)

	got, err := svc.GetProperty(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Lakeview", got.Name)
}

func TestUpdateFirstPropertyScenario(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	created, err := svc.CreateProperty(ctx, "Lakeview")
	require.NoError(t, err)
	require.Equal(t, int64(1), created.ID)

	require.NoError(t, svc.UpdateProperty(ctx, 1, "Renamed"))

	got, err := svc.GetProperty(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Name)
}

func TestDeleteMissingScenario(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	_, err := svc.CreateProperty(ctx, "Acorn")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteProperty(ctx, 999))

	properties, err := svc.ListProperties(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Acorn"}, names(properties))
}

func TestInvalidUTF8NameIsRejectedWithoutWriting(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	_, err := svc.CreateProperty(ctx, "Lake\xffview")
	assert.ErrorIs(t, err, weberr.ErrInvalidReq)

	created, err := svc.CreateProperty(ctx, "Lakeview")
	require.NoError(t, err)

	err = svc.UpdateProperty(ctx, created.ID, "\xc3\x28")
	assert.ErrorIs(t, err, weberr.ErrInvalidReq)

	got, err := svc.GetProperty(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Lakeview", got.Name)

	properties, err := svc.ListProperties(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Lakeview"}, names(properties))
}
