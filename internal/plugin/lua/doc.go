// Package lua loads script modules: Lua files that implement the module entry
// contract with a global function.
//
// A script module defines
//
//	function MepGetPlugin()
//	  return {
//	    name = "Key Logger",
//	    version = "0.2.0",
//	    type = "input",
//	    init = function() end, -- optional
//	  }
//	end
//
// Each module runs in its own interpreter with only the base, table, string
// and math libraries. The interpreter is the module's resource: handles
// created from it call back into it, and it is closed with the module.
//
// Script modules can only provide input backends; a script declaring
// "graphics" is rejected by the manager because its handle has no drawing
// surface.
package lua
