// Package services holds DocChat's core logic behind the driving ports.
//
// A chat turn flows through four steps:
//   - DocumentService decodes an uploaded document once and caches its text
//   - BuildContext assembles the message list for a turn
//   - Aggregate turns a streamed model reply into one string
//   - ChatService runs a turn end to end
//
// UploadService and SettingsService sit beside the pipeline.
package services
