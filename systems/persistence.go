package systems

import (
	"encoding/json"
	"log"

	"github.com/quasilyte/gdata"
)

// SavedRecords represents the progress data stored on disk
type SavedRecords struct {
	HighScore int `json:"highScore"`
	BestWorld int `json:"bestWorld"`
	BestLevel int `json:"bestLevel"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool
var cachedRecords SavedRecords

// InitPersistence initializes the gdata manager for record storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "koopaengine",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true

	if records, err := loadRecords(); err == nil && records != nil {
		cachedRecords = *records
	}
	return nil
}

// HighScore returns the best score seen so far, including the current
// process.
func HighScore() int {
	return cachedRecords.HighScore
}

// RecordResult merges a finished run into the saved records, writing only
// when something improved.
func RecordResult(score, world, level int) {
	improved := false
	if score > cachedRecords.HighScore {
		cachedRecords.HighScore = score
		improved = true
	}
	if world > cachedRecords.BestWorld || (world == cachedRecords.BestWorld && level > cachedRecords.BestLevel) {
		cachedRecords.BestWorld = world
		cachedRecords.BestLevel = level
		improved = true
	}
	if improved {
		_ = saveRecords(&cachedRecords)
	}
}

func loadRecords() (*SavedRecords, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("records")
	if err != nil {
		log.Printf("Warning: Could not load records: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		// No saved records yet
		return nil, nil
	}

	var records SavedRecords
	if err := json.Unmarshal(data, &records); err != nil {
		log.Printf("Warning: Could not parse saved records: %v", err)
		return nil, err
	}
	return &records, nil
}

func saveRecords(records *SavedRecords) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(records)
	if err != nil {
		log.Printf("Warning: Could not serialize records: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("records", data); err != nil {
		log.Printf("Warning: Could not save records: %v", err)
		return err
	}
	return nil
}
