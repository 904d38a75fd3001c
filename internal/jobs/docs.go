// Package jobs provides scheduled background tasks for the parcel marketplace.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the marketplace.
//
// # Available Jobs
//
// 1. ParcelBroadcastJob - Runs every minute to re-offer still-pending parcels
// to available carriers until one accepts
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(broadcastHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Broadcast failures are logged and retried on the next tick; a parcel missed
// by one sweep is picked up by the following one.
package jobs
