// Copyright 2025 The Wasmbed Authors
// SPDX-License-Identifier: Apache-2.0

package v1alpha1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// DevicePhase describes the observed lifecycle phase of a Device.
// +kubebuilder:validation:Enum=Pending;Enrolling;Enrolled;Connected;Disconnected;Unreachable;Deleting
type DevicePhase string

const (
	// DevicePhasePending means the Device resource exists but the device has
	// never contacted a gateway.
	DevicePhasePending DevicePhase = "Pending"
	// DevicePhaseEnrolling means an enrollment exchange is in progress.
	DevicePhaseEnrolling DevicePhase = "Enrolling"
	// DevicePhaseEnrolled means the device's public key is persisted and
	// matched what was presented at enrollment.
	DevicePhaseEnrolled DevicePhase = "Enrolled"
	// DevicePhaseConnected means an open session exists on the bound gateway
	// and the last heartbeat is within the liveness window.
	DevicePhaseConnected DevicePhase = "Connected"
	// DevicePhaseDisconnected means no session exists but the device was
	// heard from recently.
	DevicePhaseDisconnected DevicePhase = "Disconnected"
	// DevicePhaseUnreachable means no session exists and the device has been
	// silent past the unreachable threshold.
	DevicePhaseUnreachable DevicePhase = "Unreachable"
	// DevicePhaseDeleting means the resource is marked for deletion; the
	// device may not accept new sessions.
	DevicePhaseDeleting DevicePhase = "Deleting"
)

// DeviceArchitecture is the MCU family the device belongs to. It is opaque
// to the control plane except as routing metadata.
// +kubebuilder:validation:Enum=ARM_CORTEX_M;RISCV32;XTENSA
type DeviceArchitecture string

const (
	DeviceArchitectureARMCortexM DeviceArchitecture = "ARM_CORTEX_M"
	DeviceArchitectureRISCV32    DeviceArchitecture = "RISCV32"
	DeviceArchitectureXtensa     DeviceArchitecture = "XTENSA"
)

// DeviceSpec defines the desired state of Device.
type DeviceSpec struct {
	// PublicKey is the device's base64-encoded public key. The SHA-256
	// fingerprint of this key is the device's wire identity.
	// +kubebuilder:validation:Required
	PublicKey string `json:"publicKey"`

	// Architecture identifies the MCU family.
	// +kubebuilder:validation:Required
	Architecture DeviceArchitecture `json:"architecture"`

	// McuType names the concrete board or emulation target,
	// e.g. "Mps2An385".
	// +optional
	McuType string `json:"mcuType,omitempty"`

	// GatewayBinding names the Gateway that should own this device's
	// session. When empty, the device may enroll against any Ready gateway.
	// +optional
	GatewayBinding string `json:"gatewayBinding,omitempty"`
}

// DeviceStatus defines the observed state of Device.
type DeviceStatus struct {
	// Phase is the observed lifecycle phase.
	// +optional
	Phase DevicePhase `json:"phase,omitempty"`

	// GatewayBinding is the gateway observed to own the device's session.
	// +optional
	GatewayBinding string `json:"gatewayBinding,omitempty"`

	// LastHeartbeat is the timestamp of the most recent valid heartbeat.
	// +optional
	LastHeartbeat *metav1.Time `json:"lastHeartbeat,omitempty"`

	// Applications lists the Application names currently deployed to this
	// device, as reported over its session.
	// +optional
	Applications []string `json:"applications,omitempty"`

	// ObservedGeneration reflects the generation most recently reconciled.
	// +optional
	ObservedGeneration int64 `json:"observedGeneration,omitempty"`

	// Conditions represent the current state of the Device resource.
	// +listType=map
	// +listMapKey=type
	// +optional
	Conditions []metav1.Condition `json:"conditions,omitempty"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:resource:shortName=dev;devs
// +kubebuilder:printcolumn:name="Phase",type=string,JSONPath=`.status.phase`
// +kubebuilder:printcolumn:name="Gateway",type=string,JSONPath=`.status.gatewayBinding`
// +kubebuilder:printcolumn:name="Heartbeat",type=date,JSONPath=`.status.lastHeartbeat`

// Device is the Schema for the devices API. It represents a single
// microcontroller identified by a public key fingerprint.
type Device struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   DeviceSpec   `json:"spec,omitempty"`
	Status DeviceStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// DeviceList contains a list of Device.
type DeviceList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []Device `json:"items"`
}

func init() {
	SchemeBuilder.Register(&Device{}, &DeviceList{})
}

// GetConditions returns the conditions of the Device.
func (d *Device) GetConditions() []metav1.Condition {
	return d.Status.Conditions
}

// SetConditions sets the conditions of the Device.
func (d *Device) SetConditions(conditions []metav1.Condition) {
	d.Status.Conditions = conditions
}
