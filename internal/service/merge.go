// SPDX-License-Identifier: Apache-2.0

package service

import "github.com/masrouf-app/masrouf/models"

// mergeResult is the outcome of reconciling one collection.
type mergeResult[T any] struct {
	// merged holds exactly the union of local and remote ids, no
	// duplicates, each entry being the adopted version of its record.
	merged []T
	// checkpoint maps every merged id to the fingerprint of its adopted
	// record; persisting it is what makes the next cycle incremental.
	checkpoint map[string]string
	stats      models.MergeStats
}

// mergeRecords reconciles the current local records against freshly fetched
// remote records using the checkpoint written by the last successful cycle.
//
// Classification per id in the union of both sides:
//
//   - only remote has it: remote addition, adopt remote (downloaded).
//   - only local has it: local addition, adopt local (uploaded).
//   - both have it and fingerprints match: unchanged, adopt the local copy.
//   - fingerprints differ: the checkpoint tells which side moved since the
//     last sync. A one-sided change adopts that side. When both sides moved
//     — or no checkpoint entry exists to tell — it is a conflict, resolved
//     by the strictly later modification timestamp; the adopted record is
//     flagged with SyncStatusConflict rather than silently overwriting.
//
// Equal timestamps with differing content adopt the remote version: edits
// made by hand in the spreadsheet carry no reliable local timestamp, so an
// exact tie is assumed to be a deliberate remote edit.
//
// Output ordering is deterministic: local records in their stored order,
// then remote-only records in fetch order.
func mergeRecords[T any](sc collectionSchema[T], local, remote []T, checkpoint map[string]string) mergeResult[T] {
	result := mergeResult[T]{
		merged:     make([]T, 0, len(local)+len(remote)),
		checkpoint: make(map[string]string, len(local)+len(remote)),
	}

	remoteIndex := make(map[string]T, len(remote))
	for _, record := range remote {
		remoteIndex[sc.id(record)] = record
	}
	localIndex := make(map[string]T, len(local))
	for _, record := range local {
		localIndex[sc.id(record)] = record
	}

	adopt := func(id string, record T, status models.SyncStatus) {
		sc.setSyncStatus(&record, status)
		result.merged = append(result.merged, record)
		result.checkpoint[id] = sc.fingerprint(record)
	}

	for _, localRecord := range local {
		id := sc.id(localRecord)

		remoteRecord, existsRemotely := remoteIndex[id]
		if !existsRemotely {
			// Local addition the sheet has never seen.
			adopt(id, localRecord, models.SyncStatusSynced)
			result.stats.Uploaded++
			continue
		}

		localFingerprint := sc.fingerprint(localRecord)
		remoteFingerprint := sc.fingerprint(remoteRecord)

		if localFingerprint == remoteFingerprint {
			// Identical content; metadata differences alone move nothing.
			adopt(id, localRecord, models.SyncStatusSynced)
			continue
		}

		lastKnown, hasLastKnown := checkpoint[id]
		localChanged := !hasLastKnown || localFingerprint != lastKnown
		remoteChanged := !hasLastKnown || remoteFingerprint != lastKnown

		switch {
		case localChanged && !remoteChanged:
			adopt(id, localRecord, models.SyncStatusSynced)
			result.stats.Uploaded++

		case remoteChanged && !localChanged:
			adopt(id, remoteRecord, models.SyncStatusSynced)
			result.stats.Downloaded++

		default:
			// Both sides moved since the last checkpoint (or there is no
			// checkpoint to tell): a real conflict of content.
			result.stats.Conflicts++
			if sc.timestamp(localRecord).After(sc.timestamp(remoteRecord)) {
				adopt(id, localRecord, models.SyncStatusConflict)
				result.stats.Uploaded++
			} else {
				adopt(id, remoteRecord, models.SyncStatusConflict)
				result.stats.Downloaded++
			}
		}
	}

	for _, remoteRecord := range remote {
		id := sc.id(remoteRecord)
		if _, existsLocally := localIndex[id]; existsLocally {
			continue
		}
		// Remote addition, e.g. a row typed directly into the sheet.
		adopt(id, remoteRecord, models.SyncStatusSynced)
		result.stats.Downloaded++
	}

	return result
}
