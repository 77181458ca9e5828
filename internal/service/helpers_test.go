package service

import (
	"time"

	"sheetregistry/internal/testutil"
)

// Shared fixtures for the service tests.

var fixedTime = time.Date(2024, 5, 12, 9, 30, 0, 0, time.UTC)

const (
	testRecordsSheet = "Records"
	testUsersSheet   = "Users"
	testAuditSheet   = "AuditLog"
)

func recordsHeader() []interface{} {
	return []interface{}{
		"id", "fullName", "populationId", "familyId", "gender",
		"dateOfBirth", "placeOfBirth", "religion", "bloodType",
		"status", "lastUpdated",
	}
}

func usersHeader() []interface{} {
	return []interface{}{"displayName", "email", "credential", "sessionToken", "role"}
}

func auditHeader() []interface{} {
	return []interface{}{"sequence", "actorName", "actorEmail", "action", "details", "timestamp"}
}

func newSeededStore() *testutil.FakeStore {
	store := testutil.NewFakeStore()
	store.Seed(testRecordsSheet, [][]interface{}{recordsHeader()})
	store.Seed(testUsersSheet, [][]interface{}{usersHeader()})
	store.Seed(testAuditSheet, [][]interface{}{auditHeader()})
	return store
}

func newTestCatalog(store *testutil.FakeStore, sink *testutil.RecorderSink) *RecordCatalog {
	c := NewRecordCatalog(store, sink, testRecordsSheet)
	c.now = func() time.Time { return fixedTime }
	return c
}

func newTestAuditLog(store *testutil.FakeStore) *AuditLog {
	l := NewAuditLog(store, testAuditSheet)
	l.now = func() time.Time { return fixedTime }
	return l
}
