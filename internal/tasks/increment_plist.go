package tasks

import (
	"context"
	"fmt"
	"os"

	"github.com/shaiso/releng/internal/catalog"
	"github.com/shaiso/releng/internal/ghclient"
	"github.com/shaiso/releng/internal/state"
	"github.com/shaiso/releng/internal/telemetry"
)

// IncrementPlistTask переводит дескриптор текущего релиза на следующий
// релиз из каталога: переписывает локальный plist и коммитит его
// в репозиторий.
type IncrementPlistTask struct {
	// GH — клиент репозитория.
	GH *ghclient.Client

	// DescriptorPath — локальный путь к plist-дескриптору.
	DescriptorPath string

	// RemotePath — путь к дескриптору внутри репозитория.
	RemotePath string
}

// Run реализует Runner.
func (t *IncrementPlistTask) Run(ctx context.Context, st *state.State) error {
	log := telemetry.WithTask(st.Logger, TaskIncrementPlist)

	log.Info("incrementing version in the current release descriptor", "path", t.DescriptorPath)
	log.Info("current release", "release", st.Current.String())

	next, err := st.NextRelease()
	if err != nil {
		return err
	}
	log.Info("next release", "release", next.String())

	if err := catalog.SaveCurrentRelease(t.DescriptorPath, next); err != nil {
		return fmt.Errorf("rewrite descriptor: %w", err)
	}
	log.Info("descriptor updated with the next release")

	content, err := os.ReadFile(t.DescriptorPath)
	if err != nil {
		return fmt.Errorf("read updated descriptor: %w", err)
	}

	// для коммита нужен текущий blob SHA файла в репозитории
	remote, err := t.GH.GetContents(ctx, t.RemotePath, "")
	if err != nil {
		return fmt.Errorf("get remote descriptor %s: %w", t.RemotePath, err)
	}

	message := "Update current release to " + next.String()
	if err := t.GH.UpdateFile(ctx, t.RemotePath, message, content, remote.SHA); err != nil {
		return fmt.Errorf("commit descriptor %s: %w", t.RemotePath, err)
	}

	log.Info("new release descriptor has been committed", "message", message)
	return nil
}
