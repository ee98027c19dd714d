// Copyright 2025 ZapMock Authors
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"
	"iter"

	"github.com/LeeDigitalWorks/zapmock/pkg/logger"
	"github.com/LeeDigitalWorks/zapmock/pkg/s3api/s3err"
	"github.com/LeeDigitalWorks/zapmock/pkg/s3api/s3types"
)

// maxDeleteObjects is the backend page size for batch deletes.
const maxDeleteObjects = 1000

// RemoveObjects deletes the given (key, version?) pairs in input order,
// processed in chunks of at most maxDeleteObjects as a real backend would
// page them. The returned lazy sequence carries only the errors a caller
// should act on: NoSuchVersion failures are benign under at-least-once
// delete semantics and are suppressed.
//
// Within a chunk, the first failing pair aborts the remainder of that chunk;
// later chunks are still attempted.
func (c *Client) RemoveObjects(ctx context.Context, bucket string, objects iter.Seq[s3types.ObjectToDelete]) iter.Seq[s3types.DeleteError] {
	return func(yield func(s3types.DeleteError) bool) {
		next, stop := iter.Pull(objects)
		defer stop()

		for {
			chunk := make([]s3types.ObjectToDelete, 0, maxDeleteObjects)
			for len(chunk) < maxDeleteObjects {
				o, ok := next()
				if !ok {
					break
				}
				chunk = append(chunk, o)
			}
			if len(chunk) == 0 {
				return
			}

			res := c.removeObjectsChunk(ctx, bucket, chunk)
			for _, e := range res.Errors {
				if e.Code == s3err.ErrNoSuchVersion.Code() {
					// Version already absent: the delete's goal is met.
					continue
				}
				if !yield(e) {
					return
				}
			}

			if len(chunk) < maxDeleteObjects {
				return
			}
		}
	}
}

// removeObjectsChunk deletes one chunk of pairs, collecting per-pair results
// rather than raising. The first failure abandons the remaining pairs in the
// chunk.
func (c *Client) removeObjectsChunk(ctx context.Context, bucket string, chunk []s3types.ObjectToDelete) s3types.DeleteObjectsResult {
	var res s3types.DeleteObjectsResult

	b, err := c.bucket(bucket)
	if err != nil {
		res.Errors = append(res.Errors, toDeleteError(chunk[0], err))
		return res
	}

	for _, o := range chunk {
		deleted, err := b.Remove(o.Key, o.VersionID)
		if err != nil {
			logger.Ctx(ctx).Debug().
				Str("bucket", bucket).
				Str("key", o.Key).
				Str("version_id", o.VersionID).
				Err(err).
				Msg("batch delete pair failed, abandoning chunk")
			res.Errors = append(res.Errors, toDeleteError(o, err))
			break
		}

		if deleted.DeleteMarker {
			// A version-less delete whose new latest is a marker reports the
			// marker id and suppresses the literal version id.
			res.Deleted = append(res.Deleted, s3types.DeletedObject{
				Key:                   o.Key,
				DeleteMarker:          true,
				DeleteMarkerVersionID: deleted.DeleteMarkerVersionID,
			})
			continue
		}
		res.Deleted = append(res.Deleted, s3types.DeletedObject{
			Key:       o.Key,
			VersionID: o.VersionID,
		})
	}
	return res
}

func toDeleteError(o s3types.ObjectToDelete, err error) s3types.DeleteError {
	if e, ok := err.(s3err.Error); ok {
		return s3types.DeleteError{
			Key:       o.Key,
			VersionID: o.VersionID,
			Code:      e.Code,
			Message:   e.Message,
		}
	}
	return s3types.DeleteError{
		Key:       o.Key,
		VersionID: o.VersionID,
		Code:      s3err.ErrInternalError.Code(),
		Message:   err.Error(),
	}
}
