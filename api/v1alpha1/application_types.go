// Copyright 2025 The Wasmbed Authors
// SPDX-License-Identifier: Apache-2.0

package v1alpha1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// ApplicationDesiredPhase is the operator-requested state of the workload.
// +kubebuilder:validation:Enum=Deployed;Stopped
type ApplicationDesiredPhase string

const (
	ApplicationDesiredDeployed ApplicationDesiredPhase = "Deployed"
	ApplicationDesiredStopped  ApplicationDesiredPhase = "Stopped"
)

// ApplicationPhase is the aggregate phase derived from per-device statuses.
// +kubebuilder:validation:Enum=Pending;Deploying;Running;PartialFailure;Failed;Stopped
type ApplicationPhase string

const (
	ApplicationPhasePending        ApplicationPhase = "Pending"
	ApplicationPhaseDeploying      ApplicationPhase = "Deploying"
	ApplicationPhaseRunning        ApplicationPhase = "Running"
	ApplicationPhasePartialFailure ApplicationPhase = "PartialFailure"
	ApplicationPhaseFailed         ApplicationPhase = "Failed"
	ApplicationPhaseStopped        ApplicationPhase = "Stopped"
)

// DeviceAppState is the per-device deployment state of an application.
// +kubebuilder:validation:Enum=Pending;Deploying;Running;Failed;Stopped
type DeviceAppState string

const (
	DeviceAppStatePending   DeviceAppState = "Pending"
	DeviceAppStateDeploying DeviceAppState = "Deploying"
	DeviceAppStateRunning   DeviceAppState = "Running"
	DeviceAppStateFailed    DeviceAppState = "Failed"
	DeviceAppStateStopped   DeviceAppState = "Stopped"
)

// TargetDevices selects the devices an Application is deployed to.
// Exactly one of DeviceNames or Selector should be set; when both are set,
// DeviceNames wins.
type TargetDevices struct {
	// DeviceNames is an explicit list of Device resource names.
	// +optional
	DeviceNames []string `json:"deviceNames,omitempty"`

	// Selector matches Devices by label.
	// +optional
	Selector *metav1.LabelSelector `json:"selector,omitempty"`
}

// ApplicationSpec defines the desired state of Application.
type ApplicationSpec struct {
	// WasmBytes is the base64-encoded WASM module payload. The payload is
	// immutable once accepted; changing it after creation is rejected and a
	// new Application must be created instead.
	// +kubebuilder:validation:Required
	WasmBytes string `json:"wasmBytes"`

	// TargetDevices selects the devices to deploy to. Targets are resolved
	// at reconciliation time; they may join or leave over the lifetime of
	// the application.
	// +kubebuilder:validation:Required
	TargetDevices TargetDevices `json:"targetDevices"`

	// DesiredPhase requests the workload state across all targets.
	// +kubebuilder:default=Deployed
	// +optional
	DesiredPhase ApplicationDesiredPhase `json:"desiredPhase,omitempty"`

	// Config carries the per-deployment runtime limits handed to devices.
	// +optional
	Config *ApplicationConfig `json:"config,omitempty"`
}

// ApplicationConfig carries runtime limits for the on-device interpreter.
type ApplicationConfig struct {
	// MemoryLimit is the maximum linear memory in bytes.
	// +optional
	MemoryLimit int64 `json:"memoryLimit,omitempty"`

	// CPUTimeLimitMs bounds cumulative CPU time per invocation.
	// +optional
	CPUTimeLimitMs int64 `json:"cpuTimeLimitMs,omitempty"`

	// AutoRestart restarts the module after a device-side failure.
	// +optional
	AutoRestart bool `json:"autoRestart,omitempty"`

	// MaxRestarts caps automatic restarts when AutoRestart is set.
	// +optional
	MaxRestarts int32 `json:"maxRestarts,omitempty"`
}

// DeviceAppStatus is one entry of the per-device status map.
type DeviceAppStatus struct {
	// State is the observed deployment state on this device.
	State DeviceAppState `json:"state"`

	// Reason carries the failure detail when State is Failed, or a terminal
	// note such as "target-missing" when the target vanished.
	// +optional
	Reason string `json:"reason,omitempty"`

	// LastTransition is when the state last changed.
	// +optional
	LastTransition *metav1.Time `json:"lastTransition,omitempty"`
}

// ApplicationStatus defines the observed state of Application.
type ApplicationStatus struct {
	// Phase is the aggregate phase across all targets.
	// +optional
	Phase ApplicationPhase `json:"phase,omitempty"`

	// PerDeviceStatus maps Device name to its deployment state.
	// +optional
	PerDeviceStatus map[string]DeviceAppStatus `json:"perDeviceStatus,omitempty"`

	// PayloadSHA256 is the hex SHA-256 of the accepted payload, recorded on
	// first reconciliation and used to refuse payload mutation.
	// +optional
	PayloadSHA256 string `json:"payloadSHA256,omitempty"`

	// ObservedGeneration reflects the generation most recently reconciled.
	// +optional
	ObservedGeneration int64 `json:"observedGeneration,omitempty"`

	// Conditions represent the current state of the Application resource.
	// +listType=map
	// +listMapKey=type
	// +optional
	Conditions []metav1.Condition `json:"conditions,omitempty"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:resource:shortName=app;apps
// +kubebuilder:printcolumn:name="Phase",type=string,JSONPath=`.status.phase`
// +kubebuilder:printcolumn:name="Desired",type=string,JSONPath=`.spec.desiredPhase`

// Application is the Schema for the applications API. It is a declarative
// WASM deployment unit with an opaque payload and a target device set.
type Application struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   ApplicationSpec   `json:"spec,omitempty"`
	Status ApplicationStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// ApplicationList contains a list of Application.
type ApplicationList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []Application `json:"items"`
}

func init() {
	SchemeBuilder.Register(&Application{}, &ApplicationList{})
}

// GetConditions returns the conditions of the Application.
func (a *Application) GetConditions() []metav1.Condition {
	return a.Status.Conditions
}

// SetConditions sets the conditions of the Application.
func (a *Application) SetConditions(conditions []metav1.Condition) {
	a.Status.Conditions = conditions
}
