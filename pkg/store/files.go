package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/navigate-zea/navigate/backend/pkg/ecosystem"
)

// Collection file names of the serialized dataset form: one JSON array per
// collection plus a metadata record.
const (
	FileStakeholders  = "stakeholders.json"
	FileTechnologies  = "technologies.json"
	FileFundingEvents = "funding-events.json"
	FileProjects      = "projects.json"
	FileRelationships = "relationships.json"
	FileMetadata      = "metadata.json"
)

// FileSource resolves a dataset file name to its raw contents. Directory
// and S3 loading both plug in through this.
type FileSource func(ctx context.Context, name string) ([]byte, error)

// DirSource returns a FileSource reading from a local directory.
func DirSource(dir string) FileSource {
	return func(_ context.Context, name string) ([]byte, error) {
		return os.ReadFile(filepath.Join(dir, name))
	}
}

// ReadDataset assembles a Dataset from the serialized per-collection files.
// A missing or malformed file fails the whole read; nothing is partially
// returned.
func ReadDataset(ctx context.Context, src FileSource) (ecosystem.Dataset, error) {
	var ds ecosystem.Dataset

	if err := readJSON(ctx, src, FileStakeholders, &ds.Stakeholders); err != nil {
		return ecosystem.Dataset{}, err
	}
	if err := readJSON(ctx, src, FileTechnologies, &ds.Technologies); err != nil {
		return ecosystem.Dataset{}, err
	}
	if err := readJSON(ctx, src, FileFundingEvents, &ds.FundingEvents); err != nil {
		return ecosystem.Dataset{}, err
	}
	if err := readJSON(ctx, src, FileProjects, &ds.Projects); err != nil {
		return ecosystem.Dataset{}, err
	}
	if err := readJSON(ctx, src, FileRelationships, &ds.Relationships); err != nil {
		return ecosystem.Dataset{}, err
	}
	if err := readJSON(ctx, src, FileMetadata, &ds.Metadata); err != nil {
		return ecosystem.Dataset{}, err
	}

	return ds, nil
}

func readJSON(ctx context.Context, src FileSource, name string, out any) error {
	raw, err := src(ctx, name)
	if err != nil {
		return fmt.Errorf("reading %s: %w", name, err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("parsing %s: %w", name, err)
	}
	return nil
}
