// SPDX-License-Identifier: MIT

package constants

// Event subjects published on the optional ops event bus (spec §4.11,
// §6 ETL_EVENTS_URL) when the ETL Orchestrator starts a run, completes
// each step, and completes the run. These
// are operational notifications, not a real-time public API.
const (
	// ETLQueue is the queue group ETL event consumers share.
	// The subject is of the form: ilga.etl.queue
	ETLQueue = "ilga.etl.queue"

	// ETLStepStartedSubject announces an orchestrator run beginning; it
	// is published once per run with the run mode, not once per step.
	// The subject is of the form: ilga.etl.step.started
	ETLStepStartedSubject = "ilga.etl.step.started"

	// ETLStepCompletedSubject announces a scrape step finishing,
	// successfully or not.
	// The subject is of the form: ilga.etl.step.completed
	ETLStepCompletedSubject = "ilga.etl.step.completed"

	// ETLRunCompletedSubject announces an entire orchestrator run
	// (scrape, incremental, or load-only) finishing.
	// The subject is of the form: ilga.etl.run.completed
	ETLRunCompletedSubject = "ilga.etl.run.completed"
)
