// Package hubstate persists what the viewer should restore on the next start:
// the API it talked to and the file that was selected. Filter values are not kept.
package hubstate

import (
	"path/filepath"

	"go.uber.org/zap"

	"github.com/filetug/filehub/pkg/fsutils"
	"github.com/filetug/filehub/pkg/hubsettings"
)

const stateFileName = "filehub-state.json"

var settingsDirPath = fsutils.ExpandHome(hubsettings.UserDir)

type State struct {
	APIURL         string `json:"api_url,omitempty"`
	SelectedFileID string `json:"selected_file_id,omitempty"`
}

func getStateFilePath() string {
	return filepath.Join(settingsDirPath, stateFileName)
}

var logErr = func(msg string, err error) {
}

// SetLogger routes state persistence errors to logger.
func SetLogger(logger *zap.Logger) {
	if logger == nil {
		return
	}
	logger = logger.Named("hubstate")
	logErr = func(msg string, err error) {
		logger.Warn(msg, zap.Error(err))
	}
}

// GetState reads the state file. A missing file is an empty state.
func GetState() (*State, error) {
	filePath := getStateFilePath()
	var state State
	return &state, readJSON(filePath, false, &state)
}

// GetSelectedFileID returns the remembered selection if it was made
// against the same API, otherwise an empty string.
func GetSelectedFileID(apiURL string) string {
	state, err := GetState()
	if err != nil {
		logErr("GetSelectedFileID: error reading state file", err)
		return ""
	}
	if state.APIURL != apiURL {
		return ""
	}
	return state.SelectedFileID
}

func SaveAPIURL(apiURL string) {
	saveSettingValue(func(state *State) {
		if state.APIURL != apiURL {
			state.SelectedFileID = ""
		}
		state.APIURL = apiURL
	})
}

func SaveSelectedFileID(apiURL, fileID string) {
	saveSettingValue(func(state *State) {
		state.APIURL = apiURL
		state.SelectedFileID = fileID
	})
}

var readJSON = fsutils.ReadJSONFile
var writeJSON = fsutils.WriteJSONFile
var ensureDir = fsutils.EnsureDir

func saveSettingValue(f func(state *State)) {
	state, err := GetState()
	if err != nil {
		logErr("saveSettingValue: error reading state file", err)
	}

	if err := ensureDir(settingsDirPath); err != nil {
		logErr("saveSettingValue: error creating settings directory", err)
		return
	}

	f(state)
	if err := writeJSON(getStateFilePath(), *state); err != nil {
		logErr("saveSettingValue: error writing state file", err)
	}
}
