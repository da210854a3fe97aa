// Package jobs provides scheduled background tasks for the coverage service.
//
// Jobs are cron-based, using github.com/robfig/cron/v3 with a seconds field.
//
// # Available Jobs
//
// CoverageReportJob re-reads a report file on every tick and logs the number
// of positions on a fixed row that cannot hold a beacon.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(countHandler, jobs.ReportSettings{
//		Path:     "input.txt",
//		Row:      2000000,
//		Schedule: "0 */5 * * * *",
//	}, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed report is logged and the job keeps its schedule. An invalid cron
// expression fails StartAll.
package jobs
