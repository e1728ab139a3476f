// Package script reads and writes render graph scripts in HCL.
//
// A script declares one or more graphs:
//
//	graph "JumpRenderPass" {
//	  libraries = ["GBuffer.dll", "JumpRenderPass.dll"]
//
//	  pass "GBufferRaster" "GBufferRaster" {
//	    options {
//	      samplePattern = SamplePattern.Center
//	      sampleCount   = 16
//	    }
//	  }
//	  pass "JumpRenderPass" "JumpRenderPass" {}
//
//	  edge "GBufferRaster.vbuffer" "JumpRenderPass.vbuffer" {}
//	  edge "GBufferRaster.viewW" "JumpRenderPass.viewW" {}
//
//	  outputs = ["JumpRenderPass.output"]
//	}
//
// The two pass labels are the pass type and the instance name. Option
// expressions are evaluated against the registered enums (SamplePattern,
// AccumulatePrecision, ...) and a small set of functions. The loader
// produces the format-agnostic config.Model; Write turns an assembled graph
// back into a script.
package script
