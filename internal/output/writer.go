// Package output materializes generated extension bundles onto disk.
//
// Writes are staged: the whole bundle lands in a temporary sibling directory
// first, an existing target is moved aside as a backup, and the staged
// directory is renamed into place. A failed run never leaves the target in a
// half-written state.
package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/jonathan/extension-forge/internal/types"
)

// ManifestFilename is the fixed name of the extension manifest inside a bundle
const ManifestFilename = "manifest.json"

// BackupSuffix is appended to the target directory name for the backup copy
const BackupSuffix = "_backup"

// Write materializes the bundle under targetDir. Any existing directory at
// targetDir is preserved as <targetDir>_backup, replacing an older backup if
// one exists. Returns a report listing every file written.
func Write(bundle *types.ExtensionBundle, targetDir string) (*types.WriteReport, error) {
	if bundle == nil || bundle.Manifest == nil {
		return nil, &IOError{Path: targetDir, Message: "nothing to write: bundle is empty"}
	}

	absTarget, err := filepath.Abs(targetDir)
	if err != nil {
		return nil, &IOError{Path: targetDir, Message: "failed to resolve target path", Cause: err}
	}

	parentDir := filepath.Dir(absTarget)
	if err := os.MkdirAll(parentDir, 0o755); err != nil {
		return nil, &IOError{Path: parentDir, Message: "failed to create parent directory", Cause: err}
	}

	stagingDir, err := os.MkdirTemp(parentDir, filepath.Base(absTarget)+".staging-*")
	if err != nil {
		return nil, &IOError{Path: parentDir, Message: "failed to create staging directory", Cause: err}
	}

	written, err := stageBundle(bundle, stagingDir)
	if err != nil {
		_ = os.RemoveAll(stagingDir)
		return nil, err
	}

	backupDir, err := moveAsideExisting(absTarget)
	if err != nil {
		_ = os.RemoveAll(stagingDir)
		return nil, err
	}

	if err := os.Rename(stagingDir, absTarget); err != nil {
		_ = os.RemoveAll(stagingDir)
		return nil, &IOError{Path: absTarget, Message: "failed to move staged bundle into place", Cause: err}
	}

	return &types.WriteReport{
		RunID:        uuid.New().String(),
		TargetDir:    absTarget,
		BackupDir:    backupDir,
		FilesWritten: written,
	}, nil
}

// stageBundle writes the manifest and every generated file into dir.
// Returns the relative paths written, in emission order.
func stageBundle(bundle *types.ExtensionBundle, dir string) ([]string, error) {
	manifestJSON, err := json.MarshalIndent(bundle.Manifest, "", "  ")
	if err != nil {
		return nil, &IOError{Path: ManifestFilename, Message: "failed to serialize manifest", Cause: err}
	}

	written := make([]string, 0, len(bundle.Files)+1)

	manifestPath := filepath.Join(dir, ManifestFilename)
	if err := os.WriteFile(manifestPath, append(manifestJSON, '\n'), 0o644); err != nil {
		return nil, &IOError{Path: manifestPath, Message: "failed to write manifest", Cause: err}
	}
	written = append(written, ManifestFilename)

	for _, file := range bundle.Files {
		if file.Path == ManifestFilename {
			return nil, &IOError{Path: file.Path, Message: "generated file collides with manifest.json"}
		}
		fullPath := filepath.Join(dir, file.Path)
		if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
			return nil, &IOError{Path: fullPath, Message: "failed to create file directory", Cause: err}
		}
		if err := os.WriteFile(fullPath, []byte(file.Content), 0o644); err != nil {
			return nil, &IOError{Path: fullPath, Message: fmt.Sprintf("failed to write %s", file.Path), Cause: err}
		}
		written = append(written, file.Path)
	}

	return written, nil
}

// moveAsideExisting moves an existing target directory to its backup
// location, replacing any older backup. Returns the backup path, or empty
// string when no prior target existed.
func moveAsideExisting(absTarget string) (string, error) {
	info, err := os.Stat(absTarget)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", &IOError{Path: absTarget, Message: "failed to inspect existing target", Cause: err}
	}
	if !info.IsDir() {
		return "", &IOError{Path: absTarget, Message: "target exists and is not a directory"}
	}

	backupDir := absTarget + BackupSuffix
	if err := os.RemoveAll(backupDir); err != nil {
		return "", &IOError{Path: backupDir, Message: "failed to remove previous backup", Cause: err}
	}
	if err := os.Rename(absTarget, backupDir); err != nil {
		return "", &IOError{Path: absTarget, Message: "failed to move existing target to backup", Cause: err}
	}
	return backupDir, nil
}
