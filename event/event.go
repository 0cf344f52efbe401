// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

// Package event provides a simple pub/sub event bus for domain events
// such as accepted commitments and recorded callbacks. Delivery is
// synchronous: handlers run on the publisher's goroutine, so they must
// not block.
package event

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type EventType string

type EventHandlerFunc func(Event)

type Event struct {
	Timestamp time.Time
	Data      any
	Type      EventType
}

func NewEvent(eventType EventType, eventData any) Event {
	return Event{
		Type:      eventType,
		Timestamp: time.Now(),
		Data:      eventData,
	}
}

type EventBus struct {
	subscribers map[EventType][]EventHandlerFunc
	metrics     *eventMetrics
	mu          sync.RWMutex
}

// NewEventBus creates a new EventBus. Metrics registration is skipped
// when promRegistry is nil.
func NewEventBus(promRegistry prometheus.Registerer) *EventBus {
	e := &EventBus{
		subscribers: make(map[EventType][]EventHandlerFunc),
	}
	if promRegistry != nil {
		e.initMetrics(promRegistry)
	}
	return e
}

// SubscribeFunc registers a handler for the given event type.
func (e *EventBus) SubscribeFunc(
	eventType EventType,
	handlerFunc EventHandlerFunc,
) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.subscribers[eventType] = append(
		e.subscribers[eventType],
		handlerFunc,
	)
}

// Publish delivers the given data to all subscribers of the event
// type.
func (e *EventBus) Publish(eventType EventType, eventData any) {
	e.mu.RLock()
	handlers := e.subscribers[eventType]
	e.mu.RUnlock()
	evt := NewEvent(eventType, eventData)
	for _, handler := range handlers {
		handler(evt)
	}
	if e.metrics != nil {
		e.metrics.eventsPublished.WithLabelValues(
			string(eventType),
		).Inc()
	}
}

type eventMetrics struct {
	eventsPublished *prometheus.CounterVec
}

func (e *EventBus) initMetrics(promRegistry prometheus.Registerer) {
	e.metrics = &eventMetrics{
		eventsPublished: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ghostpost_events_published_total",
				Help: "total events published by type",
			},
			[]string{"type"},
		),
	}
	promRegistry.MustRegister(e.metrics.eventsPublished)
}
