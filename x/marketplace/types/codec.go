package types

import (
	"fmt"

	"github.com/cosmos/cosmos-sdk/codec"
	cdctypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// RegisterLegacyAminoCodec registers the marketplace module's concrete
// types on the provided LegacyAmino codec. The same codec is used to
// persist state records, so every stored struct is registered here.
func RegisterLegacyAminoCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgRegisterProvider{}, "marketplace/MsgRegisterProvider", nil)
	cdc.RegisterConcrete(&MsgPostJob{}, "marketplace/MsgPostJob", nil)
	cdc.RegisterConcrete(&MsgAssignJob{}, "marketplace/MsgAssignJob", nil)
	cdc.RegisterConcrete(&MsgStartJob{}, "marketplace/MsgStartJob", nil)
	cdc.RegisterConcrete(&MsgCompleteJob{}, "marketplace/MsgCompleteJob", nil)
	cdc.RegisterConcrete(&MsgUpdatePlatformFee{}, "marketplace/MsgUpdatePlatformFee", nil)
	cdc.RegisterConcrete(&MsgDeactivateProvider{}, "marketplace/MsgDeactivateProvider", nil)
}

// RegisterInterfaces registers the marketplace msg implementations with
// the interface registry.
func RegisterInterfaces(registry cdctypes.InterfaceRegistry) {
	registry.RegisterImplementations((*sdk.Msg)(nil),
		&MsgRegisterProvider{},
		&MsgPostJob{},
		&MsgAssignJob{},
		&MsgStartJob{},
		&MsgCompleteJob{},
		&MsgUpdatePlatformFee{},
		&MsgDeactivateProvider{},
	)
}

var (
	amino = codec.NewLegacyAmino()

	// ModuleCdc marshals state records into the module KVStore.
	ModuleCdc = codec.NewLegacyAmino()
)

func init() {
	RegisterLegacyAminoCodec(amino)
	RegisterLegacyAminoCodec(ModuleCdc)
}

// proto.Message shims for hand-written message types. The module keeps
// plain Go structs instead of generated protobuf types; these methods
// satisfy the sdk.Msg contract and give each type a stable name in the
// interface registry.

func (msg *MsgRegisterProvider) Reset()         { *msg = MsgRegisterProvider{} }
func (msg *MsgRegisterProvider) String() string { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgRegisterProvider) ProtoMessage()  {}
func (msg *MsgRegisterProvider) XXX_MessageName() string {
	return "marketplace.v1.MsgRegisterProvider"
}

func (msg *MsgPostJob) Reset()         { *msg = MsgPostJob{} }
func (msg *MsgPostJob) String() string { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgPostJob) ProtoMessage()  {}
func (msg *MsgPostJob) XXX_MessageName() string {
	return "marketplace.v1.MsgPostJob"
}

func (msg *MsgAssignJob) Reset()         { *msg = MsgAssignJob{} }
func (msg *MsgAssignJob) String() string { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgAssignJob) ProtoMessage()  {}
func (msg *MsgAssignJob) XXX_MessageName() string {
	return "marketplace.v1.MsgAssignJob"
}

func (msg *MsgStartJob) Reset()         { *msg = MsgStartJob{} }
func (msg *MsgStartJob) String() string { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgStartJob) ProtoMessage()  {}
func (msg *MsgStartJob) XXX_MessageName() string {
	return "marketplace.v1.MsgStartJob"
}

func (msg *MsgCompleteJob) Reset()         { *msg = MsgCompleteJob{} }
func (msg *MsgCompleteJob) String() string { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgCompleteJob) ProtoMessage()  {}
func (msg *MsgCompleteJob) XXX_MessageName() string {
	return "marketplace.v1.MsgCompleteJob"
}

func (msg *MsgUpdatePlatformFee) Reset()         { *msg = MsgUpdatePlatformFee{} }
func (msg *MsgUpdatePlatformFee) String() string { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgUpdatePlatformFee) ProtoMessage()  {}
func (msg *MsgUpdatePlatformFee) XXX_MessageName() string {
	return "marketplace.v1.MsgUpdatePlatformFee"
}

func (msg *MsgDeactivateProvider) Reset()         { *msg = MsgDeactivateProvider{} }
func (msg *MsgDeactivateProvider) String() string { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgDeactivateProvider) ProtoMessage()  {}
func (msg *MsgDeactivateProvider) XXX_MessageName() string {
	return "marketplace.v1.MsgDeactivateProvider"
}
