// Copyright 2025 The Wasmbed Authors
// SPDX-License-Identifier: Apache-2.0

package v1alpha1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// GatewayPhase describes one gateway instance's lifecycle phase.
// +kubebuilder:validation:Enum=Initializing;Ready;Degraded;Draining;Stopped
type GatewayPhase string

const (
	// GatewayPhaseInitializing means the gateway is loading TLS material and
	// verifying resource store reachability.
	GatewayPhaseInitializing GatewayPhase = "Initializing"
	// GatewayPhaseReady means the listener is accepting and TLS is loaded.
	GatewayPhaseReady GatewayPhase = "Ready"
	// GatewayPhaseDegraded means the gateway is running but not ready.
	GatewayPhaseDegraded GatewayPhase = "Degraded"
	// GatewayPhaseDraining means the gateway refuses new sessions while
	// servicing existing ones until empty or the drain deadline.
	GatewayPhaseDraining GatewayPhase = "Draining"
	// GatewayPhaseStopped means the listener is closed.
	GatewayPhaseStopped GatewayPhase = "Stopped"
)

// GatewaySpec defines the desired state of Gateway.
type GatewaySpec struct {
	// Endpoint is the host:port pair advertised to devices.
	// +kubebuilder:validation:Required
	Endpoint string `json:"endpoint"`

	// AdminEndpoint is the cluster-internal base URL of the gateway's admin
	// HTTP surface, consumed by the controllers.
	// +kubebuilder:validation:Required
	AdminEndpoint string `json:"adminEndpoint"`

	// TLSSecretRef names the secret holding the gateway's TLS material.
	// +optional
	TLSSecretRef string `json:"tlsSecretRef,omitempty"`

	// Capacity is the maximum number of concurrent sessions.
	// +kubebuilder:validation:Minimum=1
	// +kubebuilder:default=1024
	// +optional
	Capacity int32 `json:"capacity,omitempty"`
}

// GatewayStatus defines the observed state of Gateway.
type GatewayStatus struct {
	// Phase is the observed lifecycle phase.
	// +optional
	Phase GatewayPhase `json:"phase,omitempty"`

	// CurrentSessions is the number of live sessions reported by the
	// gateway's admin surface.
	// +optional
	CurrentSessions int32 `json:"currentSessions,omitempty"`

	// ObservedEndpoint is the device endpoint the gateway reported.
	// +optional
	ObservedEndpoint string `json:"observedEndpoint,omitempty"`

	// ObservedGeneration reflects the generation most recently reconciled.
	// +optional
	ObservedGeneration int64 `json:"observedGeneration,omitempty"`

	// Conditions represent the current state of the Gateway resource.
	// +listType=map
	// +listMapKey=type
	// +optional
	Conditions []metav1.Condition `json:"conditions,omitempty"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:resource:shortName=gw;gws
// +kubebuilder:printcolumn:name="Phase",type=string,JSONPath=`.status.phase`
// +kubebuilder:printcolumn:name="Sessions",type=integer,JSONPath=`.status.currentSessions`
// +kubebuilder:printcolumn:name="Endpoint",type=string,JSONPath=`.spec.endpoint`

// Gateway is the Schema for the gateways API. It represents one running
// instance of the TLS-terminating device gateway.
type Gateway struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   GatewaySpec   `json:"spec,omitempty"`
	Status GatewayStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// GatewayList contains a list of Gateway.
type GatewayList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []Gateway `json:"items"`
}

func init() {
	SchemeBuilder.Register(&Gateway{}, &GatewayList{})
}

// GetConditions returns the conditions of the Gateway.
func (g *Gateway) GetConditions() []metav1.Condition {
	return g.Status.Conditions
}

// SetConditions sets the conditions of the Gateway.
func (g *Gateway) SetConditions(conditions []metav1.Condition) {
	g.Status.Conditions = conditions
}
