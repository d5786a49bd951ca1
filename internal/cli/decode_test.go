package cli

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/vehiclekit/vpic/pkg/vpic"
)

func TestParseBatchArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    []vpic.BatchItem
		wantErr bool
	}{
		{
			name: "vin only",
			args: []string{"1FTMW1T88MFA00001"},
			want: []vpic.BatchItem{{VIN: "1FTMW1T88MFA00001"}},
		},
		{
			name: "vin with year",
			args: []string{"1FTMW1T88MFA00001,2021"},
			want: []vpic.BatchItem{{VIN: "1FTMW1T88MFA00001", ModelYear: 2021}},
		},
		{
			name: "mixed",
			args: []string{"1FTMW1T88MFA00001,2021", "5YJ3E1EA8MF000001"},
			want: []vpic.BatchItem{
				{VIN: "1FTMW1T88MFA00001", ModelYear: 2021},
				{VIN: "5YJ3E1EA8MF000001"},
			},
		},
		{
			name: "whitespace tolerated",
			args: []string{" 1FTMW1T88MFA00001 , 2021 "},
			want: []vpic.BatchItem{{VIN: "1FTMW1T88MFA00001", ModelYear: 2021}},
		},
		{
			name:    "bad year",
			args:    []string{"1FTMW1T88MFA00001,twenty21"},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseBatchArgs(tt.args)
			if tt.wantErr {
				if err == nil {
					t.Fatal("parseBatchArgs = nil error, want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("parseBatchArgs: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseBatchArgs = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestReadBatchFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vins.txt")
	content := "# fleet to decode\n1FTMW1T88MFA00001,2021\n\n  5YJ3E1EA8MF000001  \n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := readBatchFile(path)
	if err != nil {
		t.Fatalf("readBatchFile: %v", err)
	}
	want := []string{"1FTMW1T88MFA00001,2021", "5YJ3E1EA8MF000001"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("readBatchFile = %v, want %v", got, want)
	}
}

func TestReadBatchFileMissing(t *testing.T) {
	if _, err := readBatchFile(filepath.Join(t.TempDir(), "absent.txt")); err == nil {
		t.Error("readBatchFile = nil error, want error for missing file")
	}
}
