package attendance

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexhr/hr-panel-go/internal/domain/attendance"
)

const testEmployeeID = "emp-1"

// stubAttendanceRepo keeps records in memory, one per employee day,
// mirroring the unique constraint the real table enforces.
type stubAttendanceRepo struct {
	attendance.AttendanceRepository
	records map[string]attendance.Attendance
}

func newStubAttendanceRepo() *stubAttendanceRepo {
	return &stubAttendanceRepo{records: make(map[string]attendance.Attendance)}
}

func dayKey(employeeID string, date time.Time) string {
	return employeeID + "|" + date.Format("2006-01-02")
}

func (s *stubAttendanceRepo) GetByEmployeeAndDate(_ context.Context, employeeID string, date time.Time) (attendance.Attendance, error) {
	rec, ok := s.records[dayKey(employeeID, date)]
	if !ok {
		return attendance.Attendance{}, pgx.ErrNoRows
	}
	return rec, nil
}

func (s *stubAttendanceRepo) Create(_ context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	att.ID = fmt.Sprintf("att-%d", len(s.records)+1)
	s.records[dayKey(att.EmployeeID, att.Date)] = att
	return att, nil
}

func (s *stubAttendanceRepo) Update(_ context.Context, att attendance.Attendance) error {
	s.records[dayKey(att.EmployeeID, att.Date)] = att
	return nil
}

func (s *stubAttendanceRepo) seed(att attendance.Attendance) {
	s.records[dayKey(att.EmployeeID, att.Date)] = att
}

// passthroughTx runs fn directly; the stub repository has no
// transactions to join.
func passthroughTx(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

// authedContext builds a request context carrying the employee_id claim
// the way the verifier middleware does after login.
func authedContext(t *testing.T) context.Context {
	t.Helper()

	tokenAuth := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := tokenAuth.Encode(map[string]interface{}{
		"employee_id": testEmployeeID,
	})
	require.NoError(t, err)

	return jwtauth.NewContext(context.Background(), token, nil)
}

func newTestService(repo *stubAttendanceRepo) attendance.AttendanceService {
	return NewAttendanceService(passthroughTx, repo, nil)
}

func TestAttendanceService_ClockIn_Success(t *testing.T) {
	// Setup
	repo := newStubAttendanceRepo()
	svc := newTestService(repo)

	// Act
	resp, err := svc.ClockIn(authedContext(t), attendance.ClockInRequest{WorkPlan: "sprint review prep"})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, string(attendance.StatusPresent), resp.Status)
	assert.NotNil(t, resp.ClockInTime)
	assert.Nil(t, resp.ClockOutTime)
}

func TestAttendanceService_ClockIn_RejectsWhenAlreadyMarked(t *testing.T) {
	// Setup
	repo := newStubAttendanceRepo()
	svc := newTestService(repo)
	now := time.Now()
	repo.seed(attendance.Attendance{
		ID:         "att-1",
		EmployeeID: testEmployeeID,
		Date:       dateOf(now),
		Status:     attendance.StatusPresent,
		ClockIn:    &now,
	})

	// Act
	_, err := svc.ClockIn(authedContext(t), attendance.ClockInRequest{WorkPlan: "second attempt"})

	// Assert
	assert.ErrorIs(t, err, attendance.ErrAlreadyMarked)
}

func TestAttendanceService_ClockOut_RejectsWithoutClockIn(t *testing.T) {
	// Setup
	repo := newStubAttendanceRepo()
	svc := newTestService(repo)

	// Act
	_, err := svc.ClockOut(authedContext(t), attendance.ClockOutRequest{WorkSummary: "wrapped up"})

	// Assert
	assert.ErrorIs(t, err, attendance.ErrNotClockedIn)
}

func TestAttendanceService_ClockOut_RejectsSecondClockOut(t *testing.T) {
	// Setup
	repo := newStubAttendanceRepo()
	svc := newTestService(repo)
	ctx := authedContext(t)

	_, err := svc.ClockIn(ctx, attendance.ClockInRequest{WorkPlan: "feature work"})
	require.NoError(t, err)

	// Act
	first, err := svc.ClockOut(ctx, attendance.ClockOutRequest{WorkSummary: "shipped the feature"})
	require.NoError(t, err)
	_, err = svc.ClockOut(ctx, attendance.ClockOutRequest{WorkSummary: "trying again"})

	// Assert
	assert.ErrorIs(t, err, attendance.ErrAlreadyClockedOut)
	rec := repo.records[dayKey(testEmployeeID, dateOf(time.Now()))]
	require.NotNil(t, rec.WorkSummary)
	assert.Equal(t, "shipped the feature", *rec.WorkSummary)
	assert.NotNil(t, first.ClockOutTime)
}

func TestAttendanceService_ClockOut_RejectsOnLeaveDay(t *testing.T) {
	// Setup
	repo := newStubAttendanceRepo()
	svc := newTestService(repo)
	reason := "family function"
	repo.seed(attendance.Attendance{
		ID:          "att-1",
		EmployeeID:  testEmployeeID,
		Date:        dateOf(time.Now()),
		Status:      attendance.StatusLeave,
		LeaveReason: &reason,
	})

	// Act
	_, err := svc.ClockOut(authedContext(t), attendance.ClockOutRequest{WorkSummary: "worked anyway"})

	// Assert
	assert.ErrorIs(t, err, attendance.ErrNotClockedIn)
}

func TestAttendanceService_RequestLeave_RejectsWhenAlreadyMarked(t *testing.T) {
	// Setup
	repo := newStubAttendanceRepo()
	svc := newTestService(repo)
	now := time.Now()
	repo.seed(attendance.Attendance{
		ID:         "att-1",
		EmployeeID: testEmployeeID,
		Date:       dateOf(now),
		Status:     attendance.StatusPresent,
		ClockIn:    &now,
	})

	// Act
	_, err := svc.RequestLeave(authedContext(t), attendance.LeaveRequest{Reason: "not feeling well"})

	// Assert
	assert.ErrorIs(t, err, attendance.ErrAlreadyMarked)
}

func TestAttendanceService_RequestLeave_Success(t *testing.T) {
	// Setup
	repo := newStubAttendanceRepo()
	svc := newTestService(repo)

	// Act
	resp, err := svc.RequestLeave(authedContext(t), attendance.LeaveRequest{Reason: "medical appointment"})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, string(attendance.StatusLeave), resp.Status)
	require.NotNil(t, resp.LeaveReason)
	assert.Equal(t, "medical appointment", *resp.LeaveReason)
}
