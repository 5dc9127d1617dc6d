/*
Package history serializes access to stored run records.

The Manager wraps a ports.ResultStore with per-run locks, so two requests that
submit the same run ID compute it once and the second one reads the stored
result. With a ports.DistributedLocker (see the redis adapter) the guarantee
holds across replicas sharing one store.
*/
package history
