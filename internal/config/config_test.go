package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.StoreBackend != BackendDynamo {
		t.Errorf("StoreBackend = %q, want %q", cfg.StoreBackend, BackendDynamo)
	}
	if cfg.FormTable != DefaultFormTable || cfg.JobsTable != DefaultJobsTable {
		t.Errorf("tables = %q/%q, want defaults", cfg.FormTable, cfg.JobsTable)
	}
	if cfg.LogFormat != "json" {
		t.Errorf("LogFormat = %q, want json", cfg.LogFormat)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	body := "store_backend: postgres\ndsn: postgresql://localhost/fc\nform_table: fc-form-data-staging\n"
	os.WriteFile(path, []byte(body), 0644)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.StoreBackend != BackendPostgres {
		t.Errorf("StoreBackend = %q, want postgres", cfg.StoreBackend)
	}
	if cfg.DSN != "postgresql://localhost/fc" {
		t.Errorf("DSN = %q", cfg.DSN)
	}
	if cfg.FormTable != "fc-form-data-staging" {
		t.Errorf("FormTable = %q", cfg.FormTable)
	}
	if cfg.JobsTable != DefaultJobsTable {
		t.Errorf("JobsTable = %q, want default", cfg.JobsTable)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	os.WriteFile(path, []byte("jobs_table: from-file\n"), 0644)

	t.Setenv("FCPROC_JOBS_TABLE", "from-env")
	t.Setenv("FCPROC_QUEUE_URL", "https://sqs.test/queue")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.JobsTable != "from-env" {
		t.Errorf("JobsTable = %q, want from-env", cfg.JobsTable)
	}
	if cfg.QueueURL != "https://sqs.test/queue" {
		t.Errorf("QueueURL = %q", cfg.QueueURL)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/config.yaml"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name: "dynamodb backend",
			cfg:  Config{StoreBackend: BackendDynamo, LogFormat: "json"},
		},
		{
			name: "postgres backend with dsn",
			cfg:  Config{StoreBackend: BackendPostgres, DSN: "postgresql://localhost/fc", LogFormat: "text"},
		},
		{
			name:    "postgres backend without dsn",
			cfg:     Config{StoreBackend: BackendPostgres, LogFormat: "json"},
			wantErr: true,
		},
		{
			name:    "unknown backend",
			cfg:     Config{StoreBackend: "redis", LogFormat: "json"},
			wantErr: true,
		},
		{
			name:    "unknown log format",
			cfg:     Config{StoreBackend: BackendDynamo, LogFormat: "xml"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateServe(t *testing.T) {
	cfg := Config{StoreBackend: BackendDynamo, LogFormat: "json"}
	if err := cfg.ValidateServe(); err == nil {
		t.Error("expected error without queue url")
	}
	cfg.QueueURL = "https://sqs.test/queue"
	if err := cfg.ValidateServe(); err != nil {
		t.Errorf("ValidateServe: %v", err)
	}
}

func TestValidateWithBucket(t *testing.T) {
	cfg := Config{StoreBackend: BackendDynamo, LogFormat: "json"}
	if err := cfg.ValidateWithBucket(); err == nil {
		t.Error("expected error without bucket")
	}
	cfg.Bucket = "inference-output"
	if err := cfg.ValidateWithBucket(); err != nil {
		t.Errorf("ValidateWithBucket: %v", err)
	}
}
