package bike_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	appbike "github.com/tu-usuario/bicirent-pro/internal/application/bike"
	"github.com/tu-usuario/bicirent-pro/internal/application/dto"
	"github.com/tu-usuario/bicirent-pro/internal/domain"
	"github.com/tu-usuario/bicirent-pro/internal/domain/entity"
	"github.com/tu-usuario/bicirent-pro/internal/domain/repository"
)

type fakeBikeRepo struct {
	bikes map[string]*entity.Bike
	saves int
}

func (f *fakeBikeRepo) Save(_ context.Context, b *entity.Bike) error {
	f.saves++
	f.bikes[b.ID] = b
	return nil
}

func (f *fakeBikeRepo) FindByID(_ context.Context, id string) (*entity.Bike, error) {
	return f.bikes[id], nil
}

func (f *fakeBikeRepo) FindAll(_ context.Context, filter repository.BikeFilter) ([]*entity.Bike, error) {
	var out []*entity.Bike
	for _, b := range f.bikes {
		if filter.Type != "" && b.Type != filter.Type {
			continue
		}
		if filter.Status != "" && string(b.Status) != filter.Status {
			continue
		}
		if filter.Brand != "" && b.Brand != filter.Brand {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeBikeRepo) Delete(_ context.Context, id string) error {
	delete(f.bikes, id)
	return nil
}

func newFixture() (*appbike.UseCase, *fakeBikeRepo) {
	repo := &fakeBikeRepo{bikes: make(map[string]*entity.Bike)}
	return appbike.NewUseCase(repo, nil), repo
}

func createBike(t *testing.T, uc *appbike.UseCase) *dto.BikeResponse {
	t.Helper()
	out, err := uc.CreateBike(context.Background(), dto.CreateBikeRequest{
		Name: "Urbana 26", Brand: "Trek", Model: "FX 2", Type: "urbana", Size: "M",
		PriceCents: 250000, DailyRateCents: 5000,
	})
	require.NoError(t, err)
	return out
}

func TestCreateBike(t *testing.T) {
	uc, repo := newFixture()
	out := createBike(t, uc)

	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "AVAILABLE", out.Status)
	assert.Len(t, repo.bikes, 1)
}

func TestCreateBike_ValidacionPropaga(t *testing.T) {
	uc, repo := newFixture()
	_, err := uc.CreateBike(context.Background(), dto.CreateBikeRequest{
		Brand: "Trek", Model: "FX 2", Type: "urbana", Size: "M",
		PriceCents: 250000, DailyRateCents: 5000,
	})
	assert.ErrorIs(t, err, domain.ErrValidation, "sin nombre debe rechazarse")
	assert.Empty(t, repo.bikes)
}

func TestUpdateBike_Parcial(t *testing.T) {
	uc, _ := newFixture()
	out := createBike(t, uc)

	nuevoNombre := "Urbana 26 v2"
	nuevaTarifa := int64(6000)
	updated, err := uc.UpdateBike(context.Background(), out.ID, dto.UpdateBikeRequest{
		Name:           &nuevoNombre,
		DailyRateCents: &nuevaTarifa,
	})
	require.NoError(t, err)

	assert.Equal(t, "Urbana 26 v2", updated.Name)
	assert.Equal(t, int64(6000), updated.DailyRateCents)
	assert.Equal(t, "Trek", updated.Brand, "los campos no suministrados no cambian")
	assert.Equal(t, int64(250000), updated.PriceCents)
}

func TestUpdateBikeStatus_Acciones(t *testing.T) {
	uc, repo := newFixture()
	out := createBike(t, uc)

	rented, err := uc.UpdateBikeStatus(context.Background(), out.ID, "rent")
	require.NoError(t, err)
	assert.Equal(t, "RENTED", rented.Status)

	returned, err := uc.UpdateBikeStatus(context.Background(), out.ID, "return")
	require.NoError(t, err)
	assert.Equal(t, "AVAILABLE", returned.Status)

	saves := repo.saves
	_, err = uc.UpdateBikeStatus(context.Background(), out.ID, "pedalear")
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, saves, repo.saves, "una acción desconocida no persiste nada")
}

func TestUpdateBikeStatus_TransicionInvalidaNoPersiste(t *testing.T) {
	uc, repo := newFixture()
	out := createBike(t, uc)
	_, err := uc.UpdateBikeStatus(context.Background(), out.ID, "sell")
	require.NoError(t, err)

	saves := repo.saves
	_, err = uc.UpdateBikeStatus(context.Background(), out.ID, "rent")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition, "SOLD es terminal")
	assert.Equal(t, saves, repo.saves)
}

func TestListBikes_Filtros(t *testing.T) {
	uc, _ := newFixture()
	createBike(t, uc)
	createBike(t, uc)

	todas, err := uc.ListBikes(context.Background(), repository.BikeFilter{})
	require.NoError(t, err)
	assert.Len(t, todas, 2)

	ninguna, err := uc.ListBikes(context.Background(), repository.BikeFilter{Brand: "Specialized"})
	require.NoError(t, err)
	assert.Empty(t, ninguna)
}

func TestDeleteBike(t *testing.T) {
	uc, repo := newFixture()
	out := createBike(t, uc)

	require.NoError(t, uc.DeleteBike(context.Background(), out.ID))
	assert.Empty(t, repo.bikes)

	err := uc.DeleteBike(context.Background(), out.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
