// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package content holds the list and create-form controllers behind the
// admin pages, and the shared collections they read and write.
//
// News, stories and fatwas live only in memory. Falcons are loaded from
// and created through the remote gateway.
package content
