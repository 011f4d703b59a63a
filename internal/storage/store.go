package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/tovstar/internal/star"
	"github.com/san-kum/tovstar/internal/units"
)

// Store persists integration runs under a base directory, one directory
// per run holding metadata.json and profile.csv.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID               string    `json:"id"`
	Model            string    `json:"model"`
	Timestamp        time.Time `json:"timestamp"`
	CentralDensity   float64   `json:"central_density"` // units of saturation density
	Points           int       `json:"points"`
	RMax             float64   `json:"r_max"`
	SurfaceIndex     int       `json:"surface_index"`
	SurfaceRadiusKm  float64   `json:"surface_radius_km"`
	SurfaceMassSolar float64   `json:"surface_mass_solar"`
}

// StoredProfile is a profile read back from disk, with both natural and
// converted columns.
type StoredProfile struct {
	Radius      []float64
	Mass        []float64
	Pressure    []float64
	RadiusKm    []float64
	MassSolar   []float64
	PressureMeV []float64
}

func (s *Store) Save(centralDensity float64, prof *star.Profile, conv units.Converter) (string, error) {
	runID := fmt.Sprintf("%s_%d", prof.Model, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:               runID,
		Model:            prof.Model.String(),
		Timestamp:        time.Now(),
		CentralDensity:   centralDensity,
		Points:           len(prof.Radius),
		RMax:             prof.Radius[len(prof.Radius)-1],
		SurfaceIndex:     prof.SurfaceIndex,
		SurfaceRadiusKm:  conv.RadiusKm(prof.SurfaceRadius()),
		SurfaceMassSolar: conv.MassSolar(prof.SurfaceMass()),
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "profile.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	header := []string{"radius", "mass", "pressure", "radius_km", "mass_solar", "pressure_mev_fm3"}
	if err := w.Write(header); err != nil {
		return "", err
	}

	for i := range prof.Radius {
		row := []string{
			strconv.FormatFloat(prof.Radius[i], 'g', 17, 64),
			strconv.FormatFloat(prof.Mass[i], 'g', 17, 64),
			strconv.FormatFloat(prof.Pressure[i], 'g', 17, 64),
			strconv.FormatFloat(conv.RadiusKm(prof.Radius[i]), 'g', 17, 64),
			strconv.FormatFloat(conv.MassSolar(prof.Mass[i]), 'g', 17, 64),
			strconv.FormatFloat(conv.PressureMeV(prof.Pressure[i]), 'g', 17, 64),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

func (s *Store) LoadProfile(runID string) (*StoredProfile, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "profile.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return &StoredProfile{}, nil
	}

	n := len(records) - 1
	prof := &StoredProfile{
		Radius:      make([]float64, 0, n),
		Mass:        make([]float64, 0, n),
		Pressure:    make([]float64, 0, n),
		RadiusKm:    make([]float64, 0, n),
		MassSolar:   make([]float64, 0, n),
		PressureMeV: make([]float64, 0, n),
	}

	for _, record := range records[1:] {
		if len(record) < 6 {
			continue
		}
		vals := make([]float64, 6)
		ok := true
		for j := 0; j < 6; j++ {
			v, err := strconv.ParseFloat(record[j], 64)
			if err != nil {
				ok = false
				break
			}
			vals[j] = v
		}
		if !ok {
			continue
		}
		prof.Radius = append(prof.Radius, vals[0])
		prof.Mass = append(prof.Mass, vals[1])
		prof.Pressure = append(prof.Pressure, vals[2])
		prof.RadiusKm = append(prof.RadiusKm, vals[3])
		prof.MassSolar = append(prof.MassSolar, vals[4])
		prof.PressureMeV = append(prof.PressureMeV, vals[5])
	}

	return prof, nil
}
