package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/albertocester96/programma-manutenzioni/internal/domain"
	"github.com/albertocester96/programma-manutenzioni/internal/repository"
	"github.com/albertocester96/programma-manutenzioni/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMaintenanceRepo(t *testing.T) (*repository.SQLiteMaintenanceRepo, *repository.SQLiteEquipmentRepo, *domain.Equipment) {
	t.Helper()
	database := testutil.NewTestDB(t)
	maintRepo := repository.NewSQLiteMaintenanceRepo(database)
	equipRepo := repository.NewSQLiteEquipmentRepo(database)

	eq := testutil.NewTestEquipment("HVAC Unit 3")
	require.NoError(t, equipRepo.Create(context.Background(), eq))
	return maintRepo, equipRepo, eq
}

func TestMaintenanceRepo_CreateAndGet(t *testing.T) {
	repo, _, eq := setupMaintenanceRepo(t)
	ctx := context.Background()

	m := testutil.NewTestMaintenance(eq, "Filter change",
		testutil.WithRecurring(domain.FreqMonthly),
		testutil.WithAssignedTo("m.rossi"))
	require.NoError(t, repo.Create(ctx, m))

	got, err := repo.GetByID(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, "Filter change", got.Title)
	assert.Equal(t, eq.ID, got.EquipmentID)
	assert.Equal(t, eq.Name, got.EquipmentName)
	assert.True(t, got.IsRecurring)
	assert.Equal(t, domain.FreqMonthly, got.Frequency)
	assert.Equal(t, domain.TypeRoutine, got.MaintenanceType)
	assert.Equal(t, "m.rossi", got.AssignedTo)
	assert.Nil(t, got.ParentMaintenanceID)
	assert.Nil(t, got.CompletedDate)
	assert.True(t, got.ScheduledDate.Equal(m.ScheduledDate))
}

func TestMaintenanceRepo_GetByID_NotFound(t *testing.T) {
	repo, _, _ := setupMaintenanceRepo(t)

	_, err := repo.GetByID(context.Background(), "nope")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestMaintenanceRepo_ListFiltersByStatus(t *testing.T) {
	repo, _, eq := setupMaintenanceRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestMaintenance(eq, "A")))
	require.NoError(t, repo.Create(ctx, testutil.NewTestMaintenance(eq, "B",
		testutil.WithStatus(domain.MaintenanceCompleted))))

	all, err := repo.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	completed, err := repo.List(ctx, domain.MaintenanceCompleted)
	require.NoError(t, err)
	require.Len(t, completed, 1)
	assert.Equal(t, "B", completed[0].Title)
}

func TestMaintenanceRepo_ListOrdersByScheduledDate(t *testing.T) {
	repo, _, eq := setupMaintenanceRepo(t)
	ctx := context.Background()

	d := func(day int) time.Time { return time.Date(2024, 3, day, 9, 0, 0, 0, time.UTC) }
	require.NoError(t, repo.Create(ctx, testutil.NewTestMaintenance(eq, "later", testutil.WithScheduledDate(d(20)))))
	require.NoError(t, repo.Create(ctx, testutil.NewTestMaintenance(eq, "sooner", testutil.WithScheduledDate(d(5)))))

	list, err := repo.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "sooner", list[0].Title)
	assert.Equal(t, "later", list[1].Title)
}

func TestMaintenanceRepo_ListScheduledBetween(t *testing.T) {
	repo, _, eq := setupMaintenanceRepo(t)
	ctx := context.Background()

	day := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	inRange := testutil.NewTestMaintenance(eq, "in range",
		testutil.WithScheduledDate(day.Add(10*time.Hour)))
	before := testutil.NewTestMaintenance(eq, "before",
		testutil.WithScheduledDate(day.Add(-2*time.Hour)))
	completedInRange := testutil.NewTestMaintenance(eq, "already done",
		testutil.WithScheduledDate(day.Add(12*time.Hour)),
		testutil.WithStatus(domain.MaintenanceCompleted))
	require.NoError(t, repo.Create(ctx, inRange))
	require.NoError(t, repo.Create(ctx, before))
	require.NoError(t, repo.Create(ctx, completedInRange))

	list, err := repo.ListScheduledBetween(ctx, day, day.Add(24*time.Hour))
	require.NoError(t, err)
	require.Len(t, list, 1, "only open maintenances inside the window")
	assert.Equal(t, "in range", list[0].Title)
}

func TestMaintenanceRepo_ListScheduledBetween_PriorityOrder(t *testing.T) {
	repo, _, eq := setupMaintenanceRepo(t)
	ctx := context.Background()

	day := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Create(ctx, testutil.NewTestMaintenance(eq, "low",
		testutil.WithScheduledDate(day), testutil.WithPriority(domain.PriorityLow))))
	require.NoError(t, repo.Create(ctx, testutil.NewTestMaintenance(eq, "high",
		testutil.WithScheduledDate(day), testutil.WithPriority(domain.PriorityHigh))))

	list, err := repo.ListScheduledBetween(ctx, day.Add(-time.Hour), day.Add(time.Hour))
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "high", list[0].Title, "same date sorts high priority first")
}

func TestMaintenanceRepo_ListChain(t *testing.T) {
	repo, _, eq := setupMaintenanceRepo(t)
	ctx := context.Background()

	d := func(month time.Month) time.Time { return time.Date(2024, month, 1, 9, 0, 0, 0, time.UTC) }
	root := testutil.NewTestMaintenance(eq, "root",
		testutil.WithRecurring(domain.FreqMonthly), testutil.WithScheduledDate(d(3)))
	succ1 := testutil.NewTestMaintenance(eq, "succ1",
		testutil.WithRecurring(domain.FreqMonthly), testutil.WithScheduledDate(d(4)),
		testutil.WithParent(root.ID))
	succ2 := testutil.NewTestMaintenance(eq, "succ2",
		testutil.WithRecurring(domain.FreqMonthly), testutil.WithScheduledDate(d(5)),
		testutil.WithParent(root.ID))
	unrelated := testutil.NewTestMaintenance(eq, "unrelated")

	for _, m := range []*domain.Maintenance{succ2, root, succ1, unrelated} {
		require.NoError(t, repo.Create(ctx, m))
	}

	chain, err := repo.ListChain(ctx, root.ID)
	require.NoError(t, err)
	require.Len(t, chain, 3)
	assert.Equal(t, []string{"root", "succ1", "succ2"},
		[]string{chain[0].Title, chain[1].Title, chain[2].Title})
}

func TestMaintenanceRepo_Update(t *testing.T) {
	repo, _, eq := setupMaintenanceRepo(t)
	ctx := context.Background()

	m := testutil.NewTestMaintenance(eq, "before")
	require.NoError(t, repo.Create(ctx, m))

	m.Title = "after"
	m.Status = domain.MaintenanceInProgress
	m.UpdatedAt = time.Now().UTC()
	require.NoError(t, repo.Update(ctx, m))

	got, err := repo.GetByID(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, "after", got.Title)
	assert.Equal(t, domain.MaintenanceInProgress, got.Status)
}

func TestMaintenanceRepo_Update_NotFound(t *testing.T) {
	repo, _, eq := setupMaintenanceRepo(t)

	m := testutil.NewTestMaintenance(eq, "ghost")
	err := repo.Update(context.Background(), m)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestMaintenanceRepo_Archive(t *testing.T) {
	repo, _, eq := setupMaintenanceRepo(t)
	ctx := context.Background()

	m := testutil.NewTestMaintenance(eq, "old", testutil.WithStatus(domain.MaintenanceCompleted))
	require.NoError(t, repo.Create(ctx, m))
	require.NoError(t, repo.Archive(ctx, m.ID))

	got, err := repo.GetByID(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.MaintenanceArchived, got.Status)
}

func TestMaintenanceRepo_Delete(t *testing.T) {
	repo, _, eq := setupMaintenanceRepo(t)
	ctx := context.Background()

	m := testutil.NewTestMaintenance(eq, "gone")
	require.NoError(t, repo.Create(ctx, m))
	require.NoError(t, repo.Delete(ctx, m.ID))

	_, err := repo.GetByID(ctx, m.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, m.ID), repository.ErrNotFound)
}

func TestMaintenanceRepo_PropagateFrequency(t *testing.T) {
	repo, _, eq := setupMaintenanceRepo(t)
	ctx := context.Background()

	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	root := testutil.NewTestMaintenance(eq, "root",
		testutil.WithRecurring(domain.FreqMonthly),
		testutil.WithScheduledDate(now.AddDate(0, 1, 0)))
	futurePlanned := testutil.NewTestMaintenance(eq, "future planned",
		testutil.WithRecurring(domain.FreqMonthly),
		testutil.WithScheduledDate(now.AddDate(0, 2, 0)),
		testutil.WithParent(root.ID))
	pastPlanned := testutil.NewTestMaintenance(eq, "past planned",
		testutil.WithRecurring(domain.FreqMonthly),
		testutil.WithScheduledDate(now.AddDate(0, -1, 0)),
		testutil.WithParent(root.ID))
	futureCompleted := testutil.NewTestMaintenance(eq, "future completed",
		testutil.WithRecurring(domain.FreqMonthly),
		testutil.WithScheduledDate(now.AddDate(0, 3, 0)),
		testutil.WithParent(root.ID),
		testutil.WithStatus(domain.MaintenanceCompleted))

	for _, m := range []*domain.Maintenance{root, futurePlanned, pastPlanned, futureCompleted} {
		require.NoError(t, repo.Create(ctx, m))
	}

	n, err := repo.PropagateFrequency(ctx, root.ID, domain.FreqWeekly, now)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n, "root and the future planned successor")

	for id, want := range map[string]domain.Frequency{
		root.ID:            domain.FreqWeekly,
		futurePlanned.ID:   domain.FreqWeekly,
		pastPlanned.ID:     domain.FreqMonthly,
		futureCompleted.ID: domain.FreqMonthly,
	} {
		got, err := repo.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, want, got.Frequency)
	}
}

func TestMaintenanceRepo_NonUTCScheduledDateInWindow(t *testing.T) {
	repo, _, eq := setupMaintenanceRepo(t)
	ctx := context.Background()

	// 05:00+10:00 is 19:00Z the previous calendar day in that zone's terms;
	// stored rows must compare by instant, not by offset-local string.
	plus10 := time.FixedZone("UTC+10", 10*60*60)
	scheduled := time.Date(2024, 3, 16, 5, 0, 0, 0, plus10) // 2024-03-15T19:00:00Z
	m := testutil.NewTestMaintenance(eq, "Night shift check",
		testutil.WithScheduledDate(scheduled))
	require.NoError(t, repo.Create(ctx, m))

	from := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 3, 15, 23, 59, 59, 0, time.UTC)
	got, err := repo.ListScheduledBetween(ctx, from, to)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Night shift check", got[0].Title)
	assert.True(t, got[0].ScheduledDate.Equal(scheduled))
}

func TestMaintenanceRepo_ChainOrderWithMixedZones(t *testing.T) {
	repo, _, eq := setupMaintenanceRepo(t)
	ctx := context.Background()

	// The root's local string ("23:00+10:00") sorts after the successor's
	// ("14:00Z") even though its instant (13:00Z) is earlier.
	plus10 := time.FixedZone("UTC+10", 10*60*60)
	root := testutil.NewTestMaintenance(eq, "root",
		testutil.WithRecurring(domain.FreqDaily),
		testutil.WithScheduledDate(time.Date(2024, 3, 15, 23, 0, 0, 0, plus10)))
	require.NoError(t, repo.Create(ctx, root))
	succ := testutil.NewTestMaintenance(eq, "succ",
		testutil.WithRecurring(domain.FreqDaily),
		testutil.WithParent(root.ID),
		testutil.WithScheduledDate(time.Date(2024, 3, 15, 14, 0, 0, 0, time.UTC)))
	require.NoError(t, repo.Create(ctx, succ))

	chain, err := repo.ListChain(ctx, root.ID)
	require.NoError(t, err)
	require.Len(t, chain, 2)
	assert.Equal(t, "root", chain[0].Title)
	assert.Equal(t, "succ", chain[1].Title)
}

func TestMaintenanceRepo_ListByEquipment(t *testing.T) {
	repo, equipRepo, eq := setupMaintenanceRepo(t)
	ctx := context.Background()

	other := testutil.NewTestEquipment("Other unit")
	require.NoError(t, equipRepo.Create(ctx, other))

	d := func(day int) time.Time { return time.Date(2024, 3, day, 9, 0, 0, 0, time.UTC) }
	require.NoError(t, repo.Create(ctx, testutil.NewTestMaintenance(eq, "second", testutil.WithScheduledDate(d(10)))))
	require.NoError(t, repo.Create(ctx, testutil.NewTestMaintenance(eq, "first", testutil.WithScheduledDate(d(2)))))
	require.NoError(t, repo.Create(ctx, testutil.NewTestMaintenance(other, "elsewhere")))

	got, err := repo.ListByEquipment(ctx, eq.ID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "first", got[0].Title)
	assert.Equal(t, "second", got[1].Title)
}
