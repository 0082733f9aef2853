/*
 * Copyright 2026 Citysift By Gridbase
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package types

import (
	"fmt"

	"github.com/goccy/go-json"
)

type MessageType string

const (
	ConnectionStatusMessage MessageType = "CONNECTION_STATUS"
	SpecMessage             MessageType = "SPEC"
	SummaryMessage          MessageType = "SUMMARY"
	StatsMessage            MessageType = "STATS"
)

type ConnectionStatus string

const (
	ConnectionSucceed ConnectionStatus = "SUCCEEDED"
	ConnectionFailed  ConnectionStatus = "FAILED"
)

// Message is a dto for citysift output row representation
type Message struct {
	Type             MessageType            `json:"type"`
	ConnectionStatus *StatusRow             `json:"connectionStatus,omitempty"`
	Summary          *Summary               `json:"summary,omitempty"`
	Stats            *DatasetStats          `json:"stats,omitempty"`
	Spec             map[string]interface{} `json:"spec,omitempty"`
}

// StatusRow is a dto for check result serialization
type StatusRow struct {
	Status  ConnectionStatus `json:"status,omitempty"`
	Message string           `json:"message,omitempty"`
}

// Summary reports one filtering run; the counters mirror what the tool prints
// after writing the reduced dataset.
type Summary struct {
	CitiesRead  int     `json:"cities_read"`
	CitiesKept  int     `json:"cities_kept"`
	Countries   int     `json:"countries"`
	CityStates  int     `json:"city_states"`
	DurationSec float64 `json:"duration_sec"`
}

// DatasetStats describes the raw dataset before filtering (discover command).
type DatasetStats struct {
	Cities              int `json:"cities"`
	Countries           int `json:"countries"`
	Capitals            int `json:"capitals"`
	MillionPlus         int `json:"million_plus"`
	SingleCityCountries int `json:"single_city_countries"`
}

// LogStatus emits a CONNECTION_STATUS protocol message on stdout.
func LogStatus(status ConnectionStatus, message string) {
	emit(Message{
		Type: ConnectionStatusMessage,
		ConnectionStatus: &StatusRow{
			Status:  status,
			Message: message,
		},
	})
}

// LogSummary emits the run summary on stdout.
func LogSummary(summary *Summary) {
	emit(Message{
		Type:    SummaryMessage,
		Summary: summary,
	})
}

// LogStats emits dataset statistics on stdout.
func LogStats(stats *DatasetStats) {
	emit(Message{
		Type:  StatsMessage,
		Stats: stats,
	})
}

// LogSpec emits an example configuration on stdout.
func LogSpec(spec map[string]interface{}) {
	emit(Message{
		Type: SpecMessage,
		Spec: spec,
	})
}

func emit(message Message) {
	content, err := json.Marshal(message)
	if err != nil {
		panic(fmt.Errorf("failed to marshal protocol message: %s", err))
	}
	fmt.Println(string(content))
}
