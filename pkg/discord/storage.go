/*
 * MIT License
 * Copyright (c) 2026 Crrow
 */

package discord

import "github.com/crrow/discordsdk-go/pkg/cdiscord"

// StorageRead reads the value stored under name into buf and returns
// the number of bytes read.
func (d *Discord) StorageRead(name string, buf []byte) (int, error) {
	return d.core.StorageRead(name, buf)
}

// StorageReadAsync reads the value stored under name. cb receives an
// owned copy of the contents exactly once from a future RunCallbacks.
func (d *Discord) StorageReadAsync(name string, cb func(data []byte, err error)) error {
	return d.core.StorageReadAsync(name, cdiscord.DataCompletion(cb))
}

// StorageReadAsyncPartial reads length bytes at offset from the value
// stored under name.
func (d *Discord) StorageReadAsyncPartial(name string, offset, length uint64, cb func(data []byte, err error)) error {
	return d.core.StorageReadAsyncPartial(name, offset, length, cdiscord.DataCompletion(cb))
}

// StorageWrite stores data under name, blocking until it is on disk.
func (d *Discord) StorageWrite(name string, data []byte) error {
	return d.core.StorageWrite(name, data)
}

// StorageWriteAsync stores data under name; cb fires exactly once with
// the outcome.
func (d *Discord) StorageWriteAsync(name string, data []byte, cb func(error)) error {
	return d.core.StorageWriteAsync(name, data, cdiscord.Completion(cb))
}

// StorageDelete removes the value stored under name.
func (d *Discord) StorageDelete(name string) error {
	return d.core.StorageDelete(name)
}

// StorageExists reports whether a value is stored under name.
func (d *Discord) StorageExists(name string) (bool, error) {
	return d.core.StorageExists(name)
}

// StorageCount returns the number of stored values.
func (d *Discord) StorageCount() (int32, error) {
	return d.core.StorageCount()
}

// StorageStat returns metadata for the value stored under name.
func (d *Discord) StorageStat(name string) (FileStat, error) {
	raw, err := d.core.StorageStat(name)
	if err != nil {
		return FileStat{}, err
	}
	return decodeFileStat(raw)
}

// StorageStatAt returns metadata for the stored value at index, for
// iterating alongside StorageCount.
func (d *Discord) StorageStatAt(index int32) (FileStat, error) {
	raw, err := d.core.StorageStatAt(index)
	if err != nil {
		return FileStat{}, err
	}
	return decodeFileStat(raw)
}

// StoragePath returns the folder where the SDK stores values for this
// application.
func (d *Discord) StoragePath() (string, error) {
	return d.core.StoragePath()
}
