/*
 * MIT License
 * Copyright (c) 2026 Crrow
 */

package cdiscord

import (
	"sync"
	"unsafe"

	"github.com/jupiterrider/ffi"
)

// storageVtbl mirrors struct IDiscordStorageManager.
type storageVtbl struct {
	read             uintptr
	readAsync        uintptr
	readAsyncPartial uintptr
	write            uintptr
	writeAsync       uintptr
	delete           uintptr
	exists           uintptr
	count            uintptr
	stat             uintptr
	statAt           uintptr
	getPath          uintptr
}

var (
	storageCifsOnce sync.Once

	// EDiscordResult read(mgr*, const char* name, uint8_t* data, uint32_t data_length, uint32_t* read)
	cifStorageRead ffi.Cif
	// void read_async(mgr*, const char* name, void* callback_data, callback)
	cifStorageReadAsync ffi.Cif
	// void read_async_partial(mgr*, const char* name, uint64_t offset, uint64_t length, void* callback_data, callback)
	cifStorageReadAsyncPartial ffi.Cif
	// EDiscordResult write(mgr*, const char* name, uint8_t* data, uint32_t data_length)
	cifStorageWrite ffi.Cif
	// void write_async(mgr*, const char* name, uint8_t* data, uint32_t data_length, void* callback_data, callback)
	cifStorageWriteAsync ffi.Cif
	// EDiscordResult delete_(mgr*, const char* name)
	cifStorageDelete ffi.Cif
	// EDiscordResult exists(mgr*, const char* name, bool* exists)
	cifStorageExists ffi.Cif
	// void count(mgr*, int32_t* count)
	cifStorageCount ffi.Cif
	// EDiscordResult stat(mgr*, const char* name, DiscordFileStat* stat)
	cifStorageStat ffi.Cif
	// EDiscordResult stat_at(mgr*, int32_t index, DiscordFileStat* stat)
	cifStorageStatAt ffi.Cif
	// EDiscordResult get_path(mgr*, DiscordPath* path)
	cifStorageGetPath ffi.Cif
)

func prepStorageCifs() {
	storageCifsOnce.Do(func() {
		mustPrepCif(&cifStorageRead, &ffi.TypeSint32,
			&ffi.TypePointer, &ffi.TypePointer, &ffi.TypePointer, &ffi.TypeUint32, &ffi.TypePointer)
		mustPrepCif(&cifStorageReadAsync, &ffi.TypeVoid,
			&ffi.TypePointer, &ffi.TypePointer, &ffi.TypePointer, &ffi.TypePointer)
		mustPrepCif(&cifStorageReadAsyncPartial, &ffi.TypeVoid,
			&ffi.TypePointer, &ffi.TypePointer, &ffi.TypeUint64, &ffi.TypeUint64, &ffi.TypePointer, &ffi.TypePointer)
		mustPrepCif(&cifStorageWrite, &ffi.TypeSint32,
			&ffi.TypePointer, &ffi.TypePointer, &ffi.TypePointer, &ffi.TypeUint32)
		mustPrepCif(&cifStorageWriteAsync, &ffi.TypeVoid,
			&ffi.TypePointer, &ffi.TypePointer, &ffi.TypePointer, &ffi.TypeUint32, &ffi.TypePointer, &ffi.TypePointer)
		mustPrepCif(&cifStorageDelete, &ffi.TypeSint32,
			&ffi.TypePointer, &ffi.TypePointer)
		mustPrepCif(&cifStorageExists, &ffi.TypeSint32,
			&ffi.TypePointer, &ffi.TypePointer, &ffi.TypePointer)
		mustPrepCif(&cifStorageCount, &ffi.TypeVoid,
			&ffi.TypePointer, &ffi.TypePointer)
		mustPrepCif(&cifStorageStat, &ffi.TypeSint32,
			&ffi.TypePointer, &ffi.TypePointer, &ffi.TypePointer)
		mustPrepCif(&cifStorageStatAt, &ffi.TypeSint32,
			&ffi.TypePointer, &ffi.TypeSint32, &ffi.TypePointer)
		mustPrepCif(&cifStorageGetPath, &ffi.TypeSint32,
			&ffi.TypePointer, &ffi.TypePointer)
	})
}

func (c *Core) storageManager() (uintptr, *storageVtbl, error) {
	prepStorageCifs()
	mgr, err := c.manager(&c.storage, c.vtbl.getStorageManager)
	if err != nil {
		return 0, nil, err
	}
	return mgr, (*storageVtbl)(unsafe.Pointer(mgr)), nil
}

// StorageRead reads the value stored under name into buf and returns
// the number of bytes read.
func (c *Core) StorageRead(name string, buf []byte) (int, error) {
	cname, err := AppendNul(name)
	if err != nil {
		return 0, err
	}
	mgr, vt, err := c.storageManager()
	if err != nil {
		return 0, err
	}
	var ret ffi.Arg
	var read uint32
	namePtr := bufferPointer(cname)
	dataPtr := bufferPointer(buf)
	length := uint32(len(buf))
	readPtr := unsafe.Pointer(&read)
	call(&cifStorageRead, vt.read, unsafe.Pointer(&ret),
		unsafe.Pointer(&mgr), unsafe.Pointer(&namePtr), unsafe.Pointer(&dataPtr),
		unsafe.Pointer(&length), unsafe.Pointer(&readPtr))
	if err := Result(int32(ret)).Err(); err != nil {
		return 0, err
	}
	return int(read), nil
}

// StorageReadAsync reads the value stored under name; cb receives an
// owned copy of the contents exactly once on a future RunCallbacks.
func (c *Core) StorageReadAsync(name string, cb DataCompletion) error {
	cname, err := AppendNul(name)
	if err != nil {
		return err
	}
	mgr, vt, err := c.storageManager()
	if err != nil {
		return err
	}
	id := bindDataCompletion(cb)
	if err := guardSlot(vt.readAsync, id); err != nil {
		return err
	}
	namePtr := bufferPointer(cname)
	callback := dataCallbackPtr
	call(&cifStorageReadAsync, vt.readAsync, nil,
		unsafe.Pointer(&mgr), unsafe.Pointer(&namePtr), unsafe.Pointer(&id), unsafe.Pointer(&callback))
	return nil
}

// StorageReadAsyncPartial reads length bytes at offset from the value
// stored under name.
func (c *Core) StorageReadAsyncPartial(name string, offset, length uint64, cb DataCompletion) error {
	cname, err := AppendNul(name)
	if err != nil {
		return err
	}
	mgr, vt, err := c.storageManager()
	if err != nil {
		return err
	}
	id := bindDataCompletion(cb)
	if err := guardSlot(vt.readAsyncPartial, id); err != nil {
		return err
	}
	namePtr := bufferPointer(cname)
	callback := dataCallbackPtr
	call(&cifStorageReadAsyncPartial, vt.readAsyncPartial, nil,
		unsafe.Pointer(&mgr), unsafe.Pointer(&namePtr),
		unsafe.Pointer(&offset), unsafe.Pointer(&length),
		unsafe.Pointer(&id), unsafe.Pointer(&callback))
	return nil
}

// StorageWrite stores data under name synchronously.
func (c *Core) StorageWrite(name string, data []byte) error {
	cname, err := AppendNul(name)
	if err != nil {
		return err
	}
	mgr, vt, err := c.storageManager()
	if err != nil {
		return err
	}
	var ret ffi.Arg
	namePtr := bufferPointer(cname)
	dataPtr := bufferPointer(data)
	length := uint32(len(data))
	call(&cifStorageWrite, vt.write, unsafe.Pointer(&ret),
		unsafe.Pointer(&mgr), unsafe.Pointer(&namePtr), unsafe.Pointer(&dataPtr), unsafe.Pointer(&length))
	return Result(int32(ret)).Err()
}

// StorageWriteAsync stores data under name; cb fires exactly once with
// the outcome.
func (c *Core) StorageWriteAsync(name string, data []byte, cb Completion) error {
	cname, err := AppendNul(name)
	if err != nil {
		return err
	}
	mgr, vt, err := c.storageManager()
	if err != nil {
		return err
	}
	id := bindCompletion(cb)
	if err := guardSlot(vt.writeAsync, id); err != nil {
		return err
	}
	namePtr := bufferPointer(cname)
	dataPtr := bufferPointer(data)
	length := uint32(len(data))
	callback := resultCallbackPtr
	call(&cifStorageWriteAsync, vt.writeAsync, nil,
		unsafe.Pointer(&mgr), unsafe.Pointer(&namePtr),
		unsafe.Pointer(&dataPtr), unsafe.Pointer(&length),
		unsafe.Pointer(&id), unsafe.Pointer(&callback))
	return nil
}

// StorageDelete removes the value stored under name.
func (c *Core) StorageDelete(name string) error {
	cname, err := AppendNul(name)
	if err != nil {
		return err
	}
	mgr, vt, err := c.storageManager()
	if err != nil {
		return err
	}
	var ret ffi.Arg
	namePtr := bufferPointer(cname)
	call(&cifStorageDelete, vt.delete, unsafe.Pointer(&ret),
		unsafe.Pointer(&mgr), unsafe.Pointer(&namePtr))
	return Result(int32(ret)).Err()
}

// StorageExists reports whether a value is stored under name.
func (c *Core) StorageExists(name string) (bool, error) {
	cname, err := AppendNul(name)
	if err != nil {
		return false, err
	}
	mgr, vt, err := c.storageManager()
	if err != nil {
		return false, err
	}
	var ret ffi.Arg
	var exists bool
	namePtr := bufferPointer(cname)
	existsPtr := unsafe.Pointer(&exists)
	call(&cifStorageExists, vt.exists, unsafe.Pointer(&ret),
		unsafe.Pointer(&mgr), unsafe.Pointer(&namePtr), unsafe.Pointer(&existsPtr))
	if err := Result(int32(ret)).Err(); err != nil {
		return false, err
	}
	return exists, nil
}

// StorageCount returns the number of stored values.
func (c *Core) StorageCount() (int32, error) {
	mgr, vt, err := c.storageManager()
	if err != nil {
		return 0, err
	}
	var count int32
	countPtr := unsafe.Pointer(&count)
	call(&cifStorageCount, vt.count, nil,
		unsafe.Pointer(&mgr), unsafe.Pointer(&countPtr))
	return count, nil
}

// StorageStat returns metadata for the value stored under name.
func (c *Core) StorageStat(name string) (FileStat, error) {
	cname, err := AppendNul(name)
	if err != nil {
		return FileStat{}, err
	}
	mgr, vt, err := c.storageManager()
	if err != nil {
		return FileStat{}, err
	}
	var ret ffi.Arg
	var stat FileStat
	namePtr := bufferPointer(cname)
	statPtr := unsafe.Pointer(&stat)
	call(&cifStorageStat, vt.stat, unsafe.Pointer(&ret),
		unsafe.Pointer(&mgr), unsafe.Pointer(&namePtr), unsafe.Pointer(&statPtr))
	if err := Result(int32(ret)).Err(); err != nil {
		return FileStat{}, err
	}
	return stat, nil
}

// StorageStatAt returns metadata for the stored value at index.
func (c *Core) StorageStatAt(index int32) (FileStat, error) {
	mgr, vt, err := c.storageManager()
	if err != nil {
		return FileStat{}, err
	}
	var ret ffi.Arg
	var stat FileStat
	statPtr := unsafe.Pointer(&stat)
	call(&cifStorageStatAt, vt.statAt, unsafe.Pointer(&ret),
		unsafe.Pointer(&mgr), unsafe.Pointer(&index), unsafe.Pointer(&statPtr))
	if err := Result(int32(ret)).Err(); err != nil {
		return FileStat{}, err
	}
	return stat, nil
}

// StoragePath returns the folder where values are stored. The out
// buffer is sized to the native DiscordPath capacity and decoded as
// NUL-bounded text.
func (c *Core) StoragePath() (string, error) {
	mgr, vt, err := c.storageManager()
	if err != nil {
		return "", err
	}
	var ret ffi.Arg
	var path [PathCap]byte
	pathPtr := unsafe.Pointer(&path)
	call(&cifStorageGetPath, vt.getPath, unsafe.Pointer(&ret),
		unsafe.Pointer(&mgr), unsafe.Pointer(&pathPtr))
	if err := Result(int32(ret)).Err(); err != nil {
		return "", err
	}
	return DecodeCharbuf(path[:])
}
