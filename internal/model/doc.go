package model

// Package model defines domain data structures used across the app: country
// records as read from the merged CSV, region fetch tasks, and status enums.
// Structures are designed for direct binding in the UI and explicit state
// transitions.
