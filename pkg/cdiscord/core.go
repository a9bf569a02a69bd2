/*
 * MIT License
 * Copyright (c) 2026 Crrow
 */

package cdiscord

import (
	"sync"
	"unsafe"

	"github.com/jupiterrider/ffi"
	"github.com/sirupsen/logrus"
)

// createParams mirrors struct DiscordCreateParams. The event-table
// pointers reference package-level variables, which the SDK retains for
// the session's lifetime; eventData is the session registry ID.
type createParams struct {
	clientID  int64
	flags     uint64
	events    uintptr // IDiscordCoreEvents*, unused by the SDK
	eventData uintptr

	applicationEvents   uintptr
	applicationVersion  int32
	userEvents          *userEvents
	userVersion         int32
	imageEvents         uintptr
	imageVersion        int32
	activityEvents      *activityEvents
	activityVersion     int32
	relationshipEvents  *relationshipEvents
	relationshipVersion int32
	lobbyEvents         *lobbyEvents
	lobbyVersion        int32
	networkEvents       *networkEvents
	networkVersion      int32
	overlayEvents       *overlayEvents
	overlayVersion      int32
	storageEvents       uintptr
	storageVersion      int32
	storeEvents         *storeEvents
	storeVersion        int32
	voiceEvents         *voiceEvents
	voiceVersion        int32
	achievementEvents   *achievementEvents
	achievementVersion  int32
}

// coreVtbl mirrors struct IDiscordCore: every slot is a function pointer
// taking the core pointer as its first argument.
type coreVtbl struct {
	destroy                uintptr
	runCallbacks           uintptr
	setLogHook             uintptr
	getApplicationManager  uintptr
	getUserManager         uintptr
	getImageManager        uintptr
	getActivityManager     uintptr
	getRelationshipManager uintptr
	getLobbyManager        uintptr
	getNetworkManager      uintptr
	getOverlayManager      uintptr
	getStorageManager      uintptr
	getStoreManager        uintptr
	getVoiceManager        uintptr
	getAchievementManager  uintptr
}

// Shared CIFs for core vtable signatures. Manager-specific CIFs live in
// their own files.
var (
	coreCifsOnce sync.Once

	cifVoidPtr    ffi.Cif // void f(void*)
	cifResultPtr  ffi.Cif // EDiscordResult f(void*)
	cifGetManager ffi.Cif // void* f(void*)
	cifSetLogHook ffi.Cif // void f(void*, EDiscordLogLevel, void*, hook)
)

func prepCoreCifs() {
	coreCifsOnce.Do(func() {
		mustPrepCif(&cifVoidPtr, &ffi.TypeVoid, &ffi.TypePointer)
		mustPrepCif(&cifResultPtr, &ffi.TypeSint32, &ffi.TypePointer)
		mustPrepCif(&cifGetManager, &ffi.TypePointer, &ffi.TypePointer)
		mustPrepCif(&cifSetLogHook, &ffi.TypeVoid,
			&ffi.TypePointer, &ffi.TypeSint32, &ffi.TypePointer, &ffi.TypePointer)
	})
}

// mustPrepCif prepares a call interface for a vtable signature. The SDK
// exposes no symbols for these, so there is no ffi.Fun to bind; calls go
// through ffi.Call with the slot address.
func mustPrepCif(cif *ffi.Cif, ret *ffi.Type, args ...*ffi.Type) {
	if status := ffi.PrepCif(cif, ffi.DefaultAbi, uint32(len(args)), ret, args...); status != ffi.OK {
		panic("cdiscord: failed to prepare vtable CIF")
	}
}

// Core is the live session with the native library. All dispatch-table
// registrations and the session context value are valid exactly as long
// as this instance; Destroy invalidates them.
//
// A Core must be polled from one goroutine at a time. The SDK fires
// every callback synchronously inside RunCallbacks on the calling
// thread.
type Core struct {
	ptr     uintptr
	vtbl    *coreVtbl
	session uintptr

	// Manager pointers, fetched on first use. Guarded by the
	// single-threaded-polling contract rather than a lock.
	user        uintptr
	activity    uintptr
	overlay     uintptr
	storage     uintptr
	voice       uintptr
	achievement uintptr
}

// Create opens a session against the native library, registering every
// event table. handler receives all notifications for the session's
// lifetime.
func Create(clientID int64, flags CreateFlags, handler EventHandler) (*Core, error) {
	if loadErr != nil {
		return nil, loadErr
	}
	initEventTables()
	initCompletionClosures()
	prepCoreCifs()

	session := registerSession(handler)

	params := createParams{
		clientID:  clientID,
		flags:     uint64(flags),
		eventData: session,

		applicationVersion:  applicationVersion,
		userEvents:          &userEventsTable,
		userVersion:         userVersion,
		imageVersion:        imageVersion,
		activityEvents:      &activityEventsTable,
		activityVersion:     activityVersion,
		relationshipEvents:  &relationshipEventsTable,
		relationshipVersion: relationshipVersion,
		lobbyEvents:         &lobbyEventsTable,
		lobbyVersion:        lobbyVersion,
		networkEvents:       &networkEventsTable,
		networkVersion:      networkVersion,
		overlayEvents:       &overlayEventsTable,
		overlayVersion:      overlayVersion,
		storageVersion:      storageVersion,
		storeEvents:         &storeEventsTable,
		storeVersion:        storeVersion,
		voiceEvents:         &voiceEventsTable,
		voiceVersion:        voiceVersion,
		achievementEvents:   &achievementEventsTable,
		achievementVersion:  achievementVersion,
	}

	var corePtr uintptr
	var ret ffi.Arg
	version := createVersion
	paramsPtr := unsafe.Pointer(&params)
	outPtr := unsafe.Pointer(&corePtr)
	fnDiscordCreate.Call(&ret, &version, &paramsPtr, &outPtr)

	if res := Result(int32(ret)); res != ResultOk {
		unregisterSession(session)
		return nil, res
	}
	if corePtr == 0 {
		unregisterSession(session)
		return nil, ResultInternalError
	}

	return &Core{
		ptr:     corePtr,
		vtbl:    (*coreVtbl)(unsafe.Pointer(corePtr)),
		session: session,
	}, nil
}

// Destroy tears down the session. The session's registration is removed
// first, so a straggling native callback during teardown is dropped
// instead of reaching a dead handler. Completion boxes the SDK still
// holds can never fire afterwards; they remain in the registry as
// accepted leaks.
func (c *Core) Destroy() {
	if c.ptr == 0 {
		return
	}
	unregisterSession(c.session)
	p := c.ptr
	call(&cifVoidPtr, c.vtbl.destroy, nil, unsafe.Pointer(&p))
	c.ptr = 0
}

// RunCallbacks processes pending SDK work. Every event-table slot and
// completion trampoline that is due fires synchronously, on this
// goroutine, before it returns.
func (c *Core) RunCallbacks() error {
	if c.ptr == 0 {
		return ResultNotRunning
	}
	var ret ffi.Arg
	p := c.ptr
	call(&cifResultPtr, c.vtbl.runCallbacks, unsafe.Pointer(&ret), unsafe.Pointer(&p))
	return Result(int32(ret)).Err()
}

// Log hook closure state. One hook serves every session; lines are
// re-emitted through logrus at the mapped level.
var (
	logHookOnce sync.Once
	logHookPtr  uintptr
)

func initLogHook() {
	logHookOnce.Do(func() {
		// void (*hook)(void* hook_data, EDiscordLogLevel level, const char* message)
		logHookPtr = newClosure("log_hook", logHookTrampoline,
			&ffi.TypeVoid, &ffi.TypePointer, &ffi.TypeSint32, &ffi.TypePointer)
	})
}

func logHookTrampoline(_ *ffi.Cif, _ unsafe.Pointer, args *unsafe.Pointer, _ unsafe.Pointer) uintptr {
	defer recoverGuard("log_hook")
	a := argSlice(args, 3)
	level := LogLevel(*(*int32)(a[1]))
	message, err := DecodeCString(*(**byte)(a[2]))
	if err != nil {
		return 0
	}
	entry := logrus.WithField("source", "discord_game_sdk")
	switch level {
	case LogLevelError:
		entry.Error(message)
	case LogLevelWarn:
		entry.Warn(message)
	case LogLevelInfo:
		entry.Info(message)
	default:
		entry.Debug(message)
	}
	return 0
}

// SetLogHook forwards native SDK log output at or above minLevel into
// logrus.
func (c *Core) SetLogHook(minLevel LogLevel) error {
	if c.ptr == 0 {
		return ResultNotRunning
	}
	initLogHook()
	p := c.ptr
	level := int32(minLevel)
	var hookData uintptr
	hook := logHookPtr
	call(&cifSetLogHook, c.vtbl.setLogHook, nil,
		unsafe.Pointer(&p), unsafe.Pointer(&level), unsafe.Pointer(&hookData), unsafe.Pointer(&hook))
	return nil
}

// manager fetches and caches a manager pointer through its getter slot.
func (c *Core) manager(cached *uintptr, getter uintptr) (uintptr, error) {
	if *cached != 0 {
		return *cached, nil
	}
	if c.ptr == 0 {
		return 0, ResultNotRunning
	}
	var mgr uintptr
	p := c.ptr
	call(&cifGetManager, getter, unsafe.Pointer(&mgr), unsafe.Pointer(&p))
	if mgr == 0 {
		return 0, ResultInternalError
	}
	*cached = mgr
	return mgr, nil
}
