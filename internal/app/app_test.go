package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/fx"
	"go.uber.org/mock/gomock"

	"logweave/internal/app/cli"
	"logweave/internal/config/logger"
)

// mockLifecycle implements fx.Lifecycle for testing
type mockLifecycle struct {
	onAppend func(fx.Hook)
}

func (m *mockLifecycle) Append(hook fx.Hook) {
	if m.onAppend != nil {
		m.onAppend(hook)
	}
}

// mockShutdowner implements fx.Shutdowner for testing
type mockShutdowner struct {
	calls int
	err   error
}

func (m *mockShutdowner) Shutdown(...fx.ShutdownOption) error {
	m.calls++
	return m.err
}

func Test_NewApp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCLI := cli.NewMockCLI(ctrl)
	mockLogger := logger.NewMockLogger(ctrl)

	application := NewApp(mockCLI, &mockShutdowner{}, mockLogger)

	assert.NotNil(t, application)
	assert.Equal(t, mockCLI, application.cli)
	assert.Equal(t, mockLogger, application.log)
}

func Test_execute(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCLI := cli.NewMockCLI(ctrl)
	mockLogger := logger.NewMockLogger(ctrl)

	app := &App{
		cli: mockCLI,
		log: mockLogger,
	}

	tests := []struct {
		name         string
		before       func()
		expectedCode int
	}{
		{
			name: "Success",
			before: func() {
				mockCLI.EXPECT().Execute().Return(0, nil)
			},
			expectedCode: 0,
		},
		{
			name: "Failure",
			before: func() {
				mockCLI.EXPECT().Execute().Return(1, errors.New("render failed"))
				mockLogger.EXPECT().Debug().Return(nil)
			},
			expectedCode: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.before()
			assert.Equal(t, tt.expectedCode, app.execute())
		})
	}
}

func Test_App_Run(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("Shuts down after the command", func(t *testing.T) {
		mockCLI := cli.NewMockCLI(ctrl)
		mockLogger := logger.NewMockLogger(ctrl)
		shutdowner := &mockShutdowner{}

		mockCLI.EXPECT().Execute().Return(0, nil)

		app := NewApp(mockCLI, shutdowner, mockLogger)
		app.Run()

		assert.Equal(t, 1, shutdowner.calls)
		assert.True(t, isClosed(app.done))
	})

	t.Run("Logs shutdown failure", func(t *testing.T) {
		mockCLI := cli.NewMockCLI(ctrl)
		mockLogger := logger.NewMockLogger(ctrl)
		shutdowner := &mockShutdowner{err: errors.New("already stopped")}

		mockCLI.EXPECT().Execute().Return(0, nil)
		mockLogger.EXPECT().Error().Return(nil)

		app := NewApp(mockCLI, shutdowner, mockLogger)
		app.Run()

		assert.Equal(t, 1, shutdowner.calls)
	})
}

func Test_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCLI := cli.NewMockCLI(ctrl)
	mockLogger := logger.NewMockLogger(ctrl)
	app := NewApp(mockCLI, &mockShutdowner{}, mockLogger)

	var registered bool
	var capturedHook fx.Hook

	testLifecycle := &mockLifecycle{
		onAppend: func(hook fx.Hook) {
			registered = true
			capturedHook = hook
		},
	}

	Register(testLifecycle, app)

	assert.True(t, registered)
	assert.NotNil(t, capturedHook.OnStart)
	assert.NotNil(t, capturedHook.OnStop)
}

func Test_Register_Hooks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCLI := cli.NewMockCLI(ctrl)
	mockLogger := logger.NewMockLogger(ctrl)
	app := NewApp(mockCLI, &mockShutdowner{}, mockLogger)

	var capturedHook fx.Hook

	Register(&mockLifecycle{onAppend: func(hook fx.Hook) { capturedHook = hook }}, app)

	mockCLI.EXPECT().Execute().Return(0, nil)

	assert.NoError(t, capturedHook.OnStart(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	assert.NoError(t, capturedHook.OnStop(ctx))
}

func Test_Register_OnStopTimeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	app := NewApp(cli.NewMockCLI(ctrl), &mockShutdowner{}, logger.NewMockLogger(ctrl))

	var capturedHook fx.Hook

	Register(&mockLifecycle{onAppend: func(hook fx.Hook) { capturedHook = hook }}, app)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, capturedHook.OnStop(ctx), context.Canceled)
}

func isClosed(ch chan struct{}) bool {
	select {
	case <-ch:
		return true
	default:
		return false
	}
}
