package types

// GeneratedFile is a (path, content) pair produced by the code generator.
// Paths are relative to the extension root and must not collide.
type GeneratedFile struct {
	Path    string `json:"path"`
	Content string `json:"content"`
}

// ExtensionBundle is the manifest plus the full list of generated files, the
// unit handed to the output writer. Created fresh per invocation; never
// persisted beyond the filesystem artifact itself.
type ExtensionBundle struct {
	Manifest *ManifestDescriptor `json:"manifest"`
	Files    []GeneratedFile     `json:"files"`
}

// File returns the generated file at the given path, if present
func (b *ExtensionBundle) File(path string) (GeneratedFile, bool) {
	for _, f := range b.Files {
		if f.Path == path {
			return f, true
		}
	}
	return GeneratedFile{}, false
}

// FilePaths returns the paths of all generated files, in emission order
func (b *ExtensionBundle) FilePaths() []string {
	paths := make([]string, 0, len(b.Files))
	for _, f := range b.Files {
		paths = append(paths, f.Path)
	}
	return paths
}

// WriteReport describes the outcome of a successful bundle write
type WriteReport struct {
	RunID        string   `json:"run_id"`
	TargetDir    string   `json:"target_dir"`
	BackupDir    string   `json:"backup_dir,omitempty"`
	FilesWritten []string `json:"files_written"`
}
