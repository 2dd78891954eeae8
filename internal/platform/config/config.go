package config

// Planner holds the storage locations and server address shared by the
// planner front ends.
type Planner struct {
	// DataFile is the path of the planner document.
	DataFile string `env:"PLANNER_DATA_FILE" envDefault:"data.json"`
	// BackupDir is the directory holding timestamped document backups.
	BackupDir string `env:"PLANNER_BACKUP_DIR" envDefault:"backups"`
	// HTTPAddr is the listen address for the web front end.
	HTTPAddr string `env:"PLANNER_HTTP_ADDR" envDefault:":8080"`
}
