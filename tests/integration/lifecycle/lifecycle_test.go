//go:build integration

package lifecycle_test

import (
	"context"
	"testing"
	"time"

	"fleetrent/internal/infra/uow"
	"fleetrent/internal/pkg/clock"
	"fleetrent/internal/usecase/commands"
	"fleetrent/tests/common/authtest"
	"fleetrent/tests/common/dbtest"
	"fleetrent/tests/integration"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// The cron entry only calls Progress on a schedule; these tests drive the
// command directly against the real database.
type LifecycleSuite struct {
	integration.SharedSuite
}

func TestLifecycleSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(LifecycleSuite))
}

func (s *LifecycleSuite) progress(t *testing.T) {
	lifecycle := commands.NewLifecycleCommands(uow.NewPostgresUoW(s.DB), clock.NewRealClock())
	require.NoError(t, lifecycle.Progress(context.Background()))
}

func (s *LifecycleSuite) rentalStatus(t *testing.T, id int64) string {
	var status string
	err := s.DB.QueryRow(context.Background(), "SELECT status FROM rentals WHERE id = $1", id).Scan(&status)
	require.NoError(t, err)
	return status
}

func (s *LifecycleSuite) vehicleStatus(t *testing.T, plate string) string {
	var status string
	err := s.DB.QueryRow(context.Background(), "SELECT status FROM vehicles WHERE plate = $1", plate).Scan(&status)
	require.NoError(t, err)
	return status
}

func (s *LifecycleSuite) TestProgress() {
	s.Run("Normal case: Due rentals activate and finish, vehicles follow", func() {
		t := s.T()

		dbtest.CreateTestVehicle(t, s.DB, "AB-601-CD")
		dbtest.CreateTestVehicle(t, s.DB, "AB-602-CD")
		dbtest.CreateTestVehicle(t, s.DB, "AB-603-CD")
		employeeID, _ := authtest.RegisterAndLogin(t, s.Router, "clerk@example.com", "employee")
		customerID, _ := authtest.RegisterAndLogin(t, s.Router, "renter@example.com", "customer")

		now := time.Now().UTC()

		// Start has passed: should become active.
		dueStart := dbtest.CreateTestRental(t, s.DB, "AB-601-CD", customerID, employeeID,
			now.Add(-1*time.Hour), now.Add(24*time.Hour), "reserved")
		// End has passed: should become finished.
		dueEnd := dbtest.CreateTestRental(t, s.DB, "AB-602-CD", customerID, employeeID,
			now.Add(-48*time.Hour), now.Add(-1*time.Hour), "active")
		// Still in the future: untouched.
		upcoming := dbtest.CreateTestRental(t, s.DB, "AB-603-CD", customerID, employeeID,
			now.Add(24*time.Hour), now.Add(48*time.Hour), "reserved")

		s.progress(t)

		require.Equal(t, "active", s.rentalStatus(t, dueStart))
		require.Equal(t, "occupied", s.vehicleStatus(t, "AB-601-CD"))

		require.Equal(t, "finished", s.rentalStatus(t, dueEnd))
		require.Equal(t, "free", s.vehicleStatus(t, "AB-602-CD"))

		require.Equal(t, "reserved", s.rentalStatus(t, upcoming))
	})

	s.Run("Normal case: Cancelled rentals never progress", func() {
		t := s.T()

		dbtest.CreateTestVehicle(t, s.DB, "AB-604-CD")
		employeeID, _ := authtest.RegisterAndLogin(t, s.Router, "clerk@example.com", "employee")
		customerID, _ := authtest.RegisterAndLogin(t, s.Router, "renter@example.com", "customer")

		now := time.Now().UTC()
		cancelled := dbtest.CreateTestRental(t, s.DB, "AB-604-CD", customerID, employeeID,
			now.Add(-1*time.Hour), now.Add(24*time.Hour), "cancelled")

		s.progress(t)

		require.Equal(t, "cancelled", s.rentalStatus(t, cancelled))
		require.Equal(t, "free", s.vehicleStatus(t, "AB-604-CD"))
	})

	s.Run("Normal case: A rental whose whole interval has passed reaches finished in two ticks", func() {
		t := s.T()

		dbtest.CreateTestVehicle(t, s.DB, "AB-605-CD")
		employeeID, _ := authtest.RegisterAndLogin(t, s.Router, "clerk@example.com", "employee")
		customerID, _ := authtest.RegisterAndLogin(t, s.Router, "renter@example.com", "customer")

		now := time.Now().UTC()
		expired := dbtest.CreateTestRental(t, s.DB, "AB-605-CD", customerID, employeeID,
			now.Add(-48*time.Hour), now.Add(-24*time.Hour), "reserved")

		// First tick activates, second tick finishes; the order inside one
		// Progress call activates before finishing, so a single call may also
		// carry it all the way.
		s.progress(t)
		s.progress(t)

		require.Equal(t, "finished", s.rentalStatus(t, expired))
		require.Equal(t, "free", s.vehicleStatus(t, "AB-605-CD"))
	})
}
