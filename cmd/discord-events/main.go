/*
 * MIT License
 * Copyright (c) 2026 Crrow
 */

// Command discord-events connects to a running Discord client, mirrors
// the current user's presence and prints every SDK event it receives.
// Useful for checking that the shared library loads and events flow.
package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/crrow/discordsdk-go/pkg/cdiscord"
	"github.com/crrow/discordsdk-go/pkg/discord"
)

func main() {
	clientID := flag.Int64("client-id", 0, "Discord application client ID")
	interval := flag.Duration("interval", 16*time.Millisecond, "callback poll interval")
	verbose := flag.Bool("verbose", false, "log SDK internals at debug level")
	flag.Parse()

	if *clientID == 0 {
		logrus.Fatal("missing required -client-id")
	}
	if *verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	d, err := discord.New(*clientID, discord.CreateNoRequireDiscord)
	if err != nil {
		logrus.WithError(err).Fatal("connect to discord")
	}
	defer d.Close()

	if err := d.SetLogHook(cdiscord.LogLevelDebug); err != nil {
		logrus.WithError(err).Warn("install log hook")
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(*interval)
	defer ticker.Stop()

	for {
		select {
		case <-sigCh:
			return
		case <-ticker.C:
		}
		if err := d.RunCallbacks(); err != nil {
			logrus.WithError(err).Error("run callbacks")
			return
		}
		drain(d)
	}
}

func drain(d *discord.Discord) {
	events := d.Events()
	for range events.CurrentUserUpdate.Drain() {
		user, err := d.CurrentUser()
		if err != nil {
			logrus.WithError(err).Warn("fetch current user")
			continue
		}
		logrus.WithFields(logrus.Fields{
			"id":       user.ID,
			"username": user.Username,
		}).Info("current user updated")
	}
	for _, ev := range events.ActivityJoin.Drain() {
		logrus.WithField("secret", ev.Secret).Info("activity join")
	}
	for _, ev := range events.ActivitySpectate.Drain() {
		logrus.WithField("secret", ev.Secret).Info("activity spectate")
	}
	for _, ev := range events.ActivityJoinRequest.Drain() {
		logrus.WithField("user", ev.User.Username).Info("ask to join")
	}
	for _, ev := range events.ActivityInvite.Drain() {
		logrus.WithFields(logrus.Fields{
			"user":     ev.User.Username,
			"activity": ev.Activity.Name,
		}).Info("activity invite")
	}
	for range events.RelationshipRefresh.Drain() {
		logrus.Info("relationship list ready")
	}
	for _, ev := range events.RelationshipUpdate.Drain() {
		logrus.WithFields(logrus.Fields{
			"user":   ev.Relationship.User.Username,
			"status": ev.Relationship.Presence.Status,
		}).Info("relationship updated")
	}
	for _, ev := range events.OverlayToggle.Drain() {
		logrus.WithField("locked", ev.Locked).Info("overlay toggled")
	}
	for _, ev := range events.EntitlementCreate.Drain() {
		logrus.WithField("sku", ev.Entitlement.SkuID).Info("entitlement created")
	}
	for _, ev := range events.EntitlementDelete.Drain() {
		logrus.WithField("sku", ev.Entitlement.SkuID).Info("entitlement deleted")
	}
	for range events.VoiceSettingsUpdate.Drain() {
		logrus.Info("voice settings updated")
	}
	for _, ev := range events.UserAchievementUpdate.Drain() {
		logrus.WithFields(logrus.Fields{
			"achievement": ev.Achievement.AchievementID,
			"percent":     ev.Achievement.PercentComplete,
		}).Info("achievement progress")
	}
}
