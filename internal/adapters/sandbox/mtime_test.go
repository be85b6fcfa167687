package sandbox_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/lambdazip/internal/adapters/sandbox"
	"go.trai.ch/lambdazip/internal/core/domain"
	"go.trai.ch/lambdazip/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestMtimeSandbox_StampsNewFiles(t *testing.T) {
	sb := newSandbox(t, domain.StagingOptions{})
	require.NoError(t, sb.WriteFileString("setup.cfg", "[install]\nprefix=\n"))

	target := time.Unix(1500000000, 0)
	wrapped, err := sandbox.NewMtimeSandbox(sb, target)
	require.NoError(t, err)

	code, err := wrapped.RunCommand(context.Background(), "mkdir -p pkg && echo x > pkg/a.py && echo y > b.py")
	require.NoError(t, err)
	assert.Equal(t, 0, code)

	assert.Equal(t, target.Unix(), modTime(t, filepath.Join(sb.Root(), "pkg", "a.py")))
	assert.Equal(t, target.Unix(), modTime(t, filepath.Join(sb.Root(), "b.py")))
	assert.Equal(t, int64(domain.SourceModTimeUnix), modTime(t, filepath.Join(sb.Root(), "setup.cfg")),
		"files present before the wrapper keep their time")
}

func TestMtimeSandbox_StampsOnNonZeroExit(t *testing.T) {
	sb := newSandbox(t, domain.StagingOptions{})

	target := time.Unix(1500000000, 0)
	wrapped, err := sandbox.NewMtimeSandbox(sb, target)
	require.NoError(t, err)

	code, err := wrapped.RunCommand(context.Background(), "echo x > partial.py; exit 2")
	require.NoError(t, err)
	assert.Equal(t, 2, code)
	assert.Equal(t, target.Unix(), modTime(t, filepath.Join(sb.Root(), "partial.py")))
}

func TestMtimeSandbox_Delegates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	inner := mocks.NewMockSandbox(ctrl)
	inner.EXPECT().Files().Return([]string{"handler.py"}, nil).Times(2)
	inner.EXPECT().Root().Return("/stage").AnyTimes()
	inner.EXPECT().ImportPath("/src/handler.py").Return(nil)
	inner.EXPECT().ImportPathAs("/src/lib/util.py", "lib/util.py").Return(nil)
	inner.EXPECT().WriteFileString("setup.cfg", "x").Return(nil)
	inner.EXPECT().Zip("/out.zip").Return(nil)
	inner.EXPECT().Destroy()

	wrapped, err := sandbox.NewMtimeSandbox(inner, time.Unix(1, 0))
	require.NoError(t, err)

	assert.Equal(t, "/stage", wrapped.Root())
	require.NoError(t, wrapped.ImportPath("/src/handler.py"))
	require.NoError(t, wrapped.ImportPathAs("/src/lib/util.py", "lib/util.py"))
	require.NoError(t, wrapped.WriteFileString("setup.cfg", "x"))
	files, err := wrapped.Files()
	require.NoError(t, err)
	assert.Equal(t, []string{"handler.py"}, files)
	require.NoError(t, wrapped.Zip("/out.zip"))
	wrapped.Destroy()
}

func TestMtimeSandbox_CommandError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	inner := mocks.NewMockSandbox(ctrl)
	inner.EXPECT().Files().Return(nil, nil).Times(1)
	inner.EXPECT().RunCommand(gomock.Any(), "pip install").Return(-1, domain.ErrCommandFailed)

	wrapped, err := sandbox.NewMtimeSandbox(inner, time.Unix(1, 0))
	require.NoError(t, err)

	code, err := wrapped.RunCommand(context.Background(), "pip install")
	require.ErrorIs(t, err, domain.ErrCommandFailed)
	assert.Equal(t, -1, code)
}
